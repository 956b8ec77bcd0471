package handle

import (
	"fmt"
	"reflect"
	"strings"
)

// NoSuchMethodError reports that a Get* convenience lookup matched nothing.
// Only the Get* wrappers raise it; the Find* primitives never do.
type NoSuchMethodError struct {
	Bean     string
	Method   string
	ArgTypes []string
}

// Error renders the stable, user-facing message. The format is a contract
// and is matched verbatim by callers and tests.
func (e *NoSuchMethodError) Error() string {
	return fmt.Sprintf("No such method [%s(%s)] for bean [%s]", e.Method, strings.Join(e.ArgTypes, ","), e.Bean)
}

// GetExecutionHandle is FindExecutionHandle with absence converted into a
// *NoSuchMethodError.
func GetExecutionHandle(l *Locator, target any, method string, argTypes ...reflect.Type) (*Handle, error) {
	if h, ok := l.FindExecutionHandle(target, method, argTypes...); ok {
		return h, nil
	}
	return nil, newNoSuchMethodError(beanString(target), method, argTypes)
}

// GetExecutableMethod is FindExecutableMethod with absence converted into a
// *NoSuchMethodError.
func GetExecutableMethod(l *Locator, beanType reflect.Type, method string, argTypes ...reflect.Type) (*Executable, error) {
	if e, ok := l.FindExecutableMethod(beanType, method, argTypes...); ok {
		return e, nil
	}
	return nil, newNoSuchMethodError(typeString(beanType), method, argTypes)
}

// GetProxyTargetMethod is FindProxyTargetMethod with absence converted into
// a *NoSuchMethodError.
func GetProxyTargetMethod(l *Locator, beanType reflect.Type, method string, argTypes ...reflect.Type) (*Executable, error) {
	if e, ok := l.FindProxyTargetMethod(beanType, method, argTypes...); ok {
		return e, nil
	}
	return nil, newNoSuchMethodError(typeString(beanType), method, argTypes)
}

func newNoSuchMethodError(bean, method string, argTypes []reflect.Type) *NoSuchMethodError {
	names := make([]string, len(argTypes))
	for i, argType := range argTypes {
		names[i] = typeString(argType)
	}
	return &NoSuchMethodError{Bean: bean, Method: method, ArgTypes: names}
}

// beanString renders the bean for the error message: the type's string form
// for type queries, the instance's string form otherwise.
func beanString(target any) string {
	if t, ok := target.(reflect.Type); ok {
		return typeString(t)
	}
	return fmt.Sprintf("%v", target)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
