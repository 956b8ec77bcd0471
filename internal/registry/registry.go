package registry

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Module is the interface that all compiled-in components must implement to
// be registered.
type Module interface {
	Register(r *Registry)
}

// Component holds the compiled Go parts of one declared implementation: the
// concrete type behind a declaration name and the factory that builds new
// instances of it.
type Component struct {
	Name string
	Type reflect.Type
	New  func() (any, error)
}

// Registry holds all registered components, method metadata, and proxy
// origins for a single application instance.
type Registry struct {
	components map[string]*Component
	metadata   map[reflect.Type]map[string]*MethodMetadata
	proxies    map[reflect.Type]reflect.Type
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		components: make(map[string]*Component),
		metadata:   make(map[reflect.Type]map[string]*MethodMetadata),
		proxies:    make(map[reflect.Type]reflect.Type),
	}
}

// RegisterComponent registers a component factory under its declaration name.
func (r *Registry) RegisterComponent(c *Component) {
	if c.Name == "" || c.Type == nil || c.New == nil {
		panic("component registration requires a name, a type, and a factory")
	}
	if _, exists := r.components[c.Name]; exists {
		panic(fmt.Sprintf("component with name '%s' already registered", c.Name))
	}
	slog.Debug("Registering component.", "name", c.Name, "type", c.Type.String())
	r.components[c.Name] = c
}

// LookupComponent resolves a declaration name to a registered component.
// A miss is a normal outcome, not an error.
func (r *Registry) LookupComponent(name string) (*Component, bool) {
	c, ok := r.components[name]
	return c, ok
}

// ComponentNames returns the names of all registered components.
func (r *Registry) ComponentNames() []string {
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	return names
}
