package registry

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// MethodMetadata describes one method of a component type as declared in its
// manifest: the parameter names in call order and any static annotations.
// Plain reflection can recover a method's parameter types but not its
// parameter names, which is why manifests carry them.
type MethodMetadata struct {
	Name        string
	Params      []string
	Annotations map[string]cty.Value
}

// RegisterMethodMetadata attaches manifest metadata to a method of the given
// component type.
func (r *Registry) RegisterMethodMetadata(typ reflect.Type, meta *MethodMetadata) {
	if typ == nil || meta == nil || meta.Name == "" {
		panic("method metadata registration requires a type and a named method")
	}
	byMethod, ok := r.metadata[typ]
	if !ok {
		byMethod = make(map[string]*MethodMetadata)
		r.metadata[typ] = byMethod
	}
	if _, exists := byMethod[meta.Name]; exists {
		panic(fmt.Sprintf("metadata for method '%s' of type '%s' already registered", meta.Name, typ.String()))
	}
	slog.Debug("Registering method metadata.", "type", typ.String(), "method", meta.Name)
	byMethod[meta.Name] = meta
}

// MethodMetadataFor returns the manifest metadata for a method of the given
// type, if any was registered.
func (r *Registry) MethodMetadataFor(typ reflect.Type, method string) (*MethodMetadata, bool) {
	byMethod, ok := r.metadata[typ]
	if !ok {
		return nil, false
	}
	meta, ok := byMethod[method]
	return meta, ok
}

// RegisterProxy records that proxyType is a generated forwarding type whose
// methods originate on originType. Generated proxies register themselves
// here so that resolution can reach through to the original definition.
func (r *Registry) RegisterProxy(proxyType, originType reflect.Type) {
	if proxyType == nil || originType == nil {
		panic("proxy registration requires both the proxy type and its origin type")
	}
	if _, exists := r.proxies[proxyType]; exists {
		panic(fmt.Sprintf("proxy type '%s' already registered", proxyType.String()))
	}
	slog.Debug("Registering proxy origin.", "proxy", proxyType.String(), "origin", originType.String())
	r.proxies[proxyType] = originType
}

// ProxyOrigin returns the origin type behind a registered proxy type. The
// second return is false when typ is not a known proxy.
func (r *Registry) ProxyOrigin(typ reflect.Type) (reflect.Type, bool) {
	origin, ok := r.proxies[typ]
	return origin, ok
}
