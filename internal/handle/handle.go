package handle

import (
	"errors"
	"fmt"
	"reflect"
)

// MethodHandle is the capability shared by every resolution tier: a resolved
// reference to one method on one target type.
type MethodHandle interface {
	MethodName() string
	TargetType() reflect.Type
	ParameterTypes() []reflect.Type
}

// Handle is a bound callable over a specific target and method signature.
// It is immutable once constructed. A handle resolved from an instance can
// be invoked directly; a handle resolved from a type carries the signature
// only.
type Handle struct {
	target     reflect.Value
	targetType reflect.Type
	method     reflect.Method
}

// MethodName returns the resolved method's name.
func (h *Handle) MethodName() string { return h.method.Name }

// TargetType returns the type the method was resolved on.
func (h *Handle) TargetType() reflect.Type { return h.targetType }

// ParameterTypes returns the method's parameter types in call order, with
// the receiver excluded.
func (h *Handle) ParameterTypes() []reflect.Type {
	offset := receiverOffset(h.targetType)
	params := make([]reflect.Type, 0, h.method.Type.NumIn()-offset)
	for i := offset; i < h.method.Type.NumIn(); i++ {
		params = append(params, h.method.Type.In(i))
	}
	return params
}

// Bound reports whether the handle holds a target instance to invoke on.
func (h *Handle) Bound() bool { return h.target.IsValid() }

// Invoke calls the method on the bound target. All results are returned in
// order; when the method's final result is a non-nil error it is also
// returned as the call error. Invoking an unbound handle fails.
func (h *Handle) Invoke(args ...any) ([]any, error) {
	if !h.Bound() {
		return nil, errors.New("handle is not bound to an instance")
	}

	params := h.ParameterTypes()
	if len(args) != len(params) {
		return nil, fmt.Errorf("method %s takes %d arguments, got %d", h.method.Name, len(params), len(args))
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, h.target)
	for i, arg := range args {
		if arg == nil {
			in = append(in, reflect.Zero(params[i]))
			continue
		}
		in = append(in, reflect.ValueOf(arg))
	}

	results := h.method.Func.Call(in)
	out := make([]any, len(results))
	for i, result := range results {
		out[i] = result.Interface()
	}

	if len(out) > 0 {
		if callErr, ok := out[len(out)-1].(error); ok && callErr != nil {
			return out, callErr
		}
	}
	return out, nil
}

// matchMethod finds the exported method with the exact given name and the
// exact ordered parameter-type list on t. There is no covariance and no
// overload scoring; anything other than a structural match is a miss.
func matchMethod(t reflect.Type, name string, argTypes []reflect.Type) (reflect.Method, bool) {
	method, ok := t.MethodByName(name)
	if !ok {
		return reflect.Method{}, false
	}

	offset := receiverOffset(t)
	if method.Type.NumIn()-offset != len(argTypes) {
		return reflect.Method{}, false
	}
	for i, argType := range argTypes {
		if method.Type.In(i+offset) != argType {
			return reflect.Method{}, false
		}
	}
	return method, true
}

// receiverOffset returns 1 for concrete types, whose method signatures carry
// the receiver as In(0), and 0 for interface types, whose do not.
func receiverOffset(t reflect.Type) int {
	if t.Kind() == reflect.Interface {
		return 0
	}
	return 1
}
