package handle

import (
	"reflect"

	"github.com/specialistvlad/wirekit/internal/registry"
)

// Locator resolves method handles against the component registry. All
// lookups are synchronous, side-effect free, and cheap to repeat.
type Locator struct {
	reg *registry.Registry
}

// NewLocator creates a Locator over the given registry.
func NewLocator(reg *registry.Registry) *Locator {
	return &Locator{reg: reg}
}

// FindExecutionHandle matches a method by exact name and exact ordered
// parameter types on the target. The target may be a reflect.Type, yielding
// an unbound handle, or an instance, yielding a handle bound to it. The
// second return is false when no such method exists.
func (l *Locator) FindExecutionHandle(target any, method string, argTypes ...reflect.Type) (*Handle, bool) {
	if target == nil {
		return nil, false
	}

	if targetType, ok := target.(reflect.Type); ok {
		m, ok := matchMethod(targetType, method, argTypes)
		if !ok {
			return nil, false
		}
		return &Handle{targetType: targetType, method: m}, true
	}

	targetType := reflect.TypeOf(target)
	m, ok := matchMethod(targetType, method, argTypes)
	if !ok {
		return nil, false
	}
	return &Handle{target: reflect.ValueOf(target), targetType: targetType, method: m}, true
}

// FindExecutableMethod matches like FindExecutionHandle but additionally
// requires the method to carry registered manifest metadata. It is absent
// when no metadata-bearing match exists, even if a plain handle would match.
func (l *Locator) FindExecutableMethod(beanType reflect.Type, method string, argTypes ...reflect.Type) (*Executable, bool) {
	if beanType == nil {
		return nil, false
	}

	meta, ok := l.reg.MethodMetadataFor(beanType, method)
	if !ok {
		return nil, false
	}
	m, ok := matchMethod(beanType, method, argTypes)
	if !ok {
		return nil, false
	}
	return &Executable{
		Handle: Handle{targetType: beanType, method: m},
		meta:   meta,
	}, true
}

// FindProxyTargetMethod resolves the method on the original definition
// behind a generated proxy type. It is absent when beanType is not a
// registered proxy, even if beanType itself has a same-named method.
func (l *Locator) FindProxyTargetMethod(beanType reflect.Type, method string, argTypes ...reflect.Type) (*Executable, bool) {
	if beanType == nil {
		return nil, false
	}

	origin, ok := l.reg.ProxyOrigin(beanType)
	if !ok {
		return nil, false
	}
	return l.FindExecutableMethod(origin, method, argTypes...)
}
