package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/wirekit/internal/ctxlog"
	"github.com/specialistvlad/wirekit/internal/manifest"
)

// ApplyManifests attaches parsed manifest metadata to the registered
// components it names. A manifest for a component that was never compiled in
// is logged and skipped; it may belong to a build with a different component
// set.
func (r *Registry) ApplyManifests(ctx context.Context, components []*manifest.Component) {
	logger := ctxlog.FromContext(ctx)

	for _, mc := range components {
		component, ok := r.components[mc.Name]
		if !ok {
			logger.Warn("Manifest names a component that is not registered, skipping.",
				"name", mc.Name, "manifest", mc.SourcePath)
			continue
		}
		for _, method := range mc.Methods {
			r.RegisterMethodMetadata(component.Type, &MethodMetadata{
				Name:        method.Name,
				Params:      method.Params,
				Annotations: method.Annotations,
			})
		}
	}
}

// Validate performs a strict parity check between manifests and Go code.
// Every manifest-declared method must exist on the component's Go type, and
// its declared parameter names must match the Go method's arity.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for name, component := range r.components {
		byMethod, ok := r.metadata[component.Type]
		if !ok {
			continue
		}

		for methodName, meta := range byMethod {
			goMethod, ok := component.Type.MethodByName(methodName)
			if !ok {
				errs = append(errs, fmt.Sprintf("component '%s': manifest declares method '%s' which does not exist on Go type %s",
					name, methodName, component.Type))
				continue
			}

			// The receiver occupies In(0) on concrete types.
			arity := goMethod.Type.NumIn() - 1
			if len(meta.Params) != arity {
				errs = append(errs, fmt.Sprintf("component '%s', method '%s': manifest declares %d params but Go method takes %d",
					name, methodName, len(meta.Params), arity))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.")
	return nil
}
