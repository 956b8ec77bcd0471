package handle

import (
	"github.com/specialistvlad/wirekit/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Executable is a Handle augmented with the manifest metadata of the
// resolved method. It exists only for methods that were registered with
// metadata support; a method without a manifest entry never yields one.
type Executable struct {
	Handle
	meta *registry.MethodMetadata
}

// ParameterNames returns the declared parameter names in call order.
func (e *Executable) ParameterNames() []string { return e.meta.Params }

// Annotation returns the named static annotation value attached to the
// method, if declared.
func (e *Executable) Annotation(name string) (cty.Value, bool) {
	val, ok := e.meta.Annotations[name]
	return val, ok
}
