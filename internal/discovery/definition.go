package discovery

import (
	"fmt"
	"strings"
	"sync"

	"github.com/specialistvlad/wirekit/internal/registry"
)

// Loader resolves a declared implementation name to a registered component.
// *registry.Registry satisfies it.
type Loader interface {
	LookupComponent(name string) (*registry.Component, bool)
}

// Definition is a lazy, named handle over one declared implementation. The
// wrapped name is resolved against the loader on first access to either
// IsPresent or Load, and the outcome never changes for this instance
// afterwards. First resolution is race-safe: concurrent callers share a
// single resolve via sync.Once.
type Definition struct {
	name   string
	loader Loader

	once      sync.Once
	component *registry.Component
}

// NewDefinition wraps a declaration in an unresolved definition. Surrounding
// whitespace is trimmed from the declared name exactly once, here.
func NewDefinition(declaration string, loader Loader) *Definition {
	return &Definition{name: strings.TrimSpace(declaration), loader: loader}
}

// Name returns the declared implementation name.
func (d *Definition) Name() string { return d.name }

// IsPresent reports whether the declared name resolves to a registered
// component. A failed lookup is a normal outcome, never an error, and the
// result is cached for the lifetime of this instance.
func (d *Definition) IsPresent() bool {
	d.resolve()
	return d.component != nil
}

// Component returns the resolved component backing this definition. The
// second return is false when the definition is absent.
func (d *Definition) Component() (*registry.Component, bool) {
	d.resolve()
	return d.component, d.component != nil
}

// Load builds a new instance of the resolved implementation by invoking its
// factory. Every call produces an independently valid instance; instances
// are never memoized here. A factory failure surfaces as *InstantiationError.
//
// Calling Load on an absent definition is a contract violation and panics;
// check IsPresent first.
func (d *Definition) Load() (any, error) {
	if !d.IsPresent() {
		panic(fmt.Sprintf("Load called on absent definition '%s'; check IsPresent first", d.name))
	}
	instance, err := d.component.New()
	if err != nil {
		return nil, &InstantiationError{Name: d.name, Err: err}
	}
	return instance, nil
}

func (d *Definition) resolve() {
	d.once.Do(func() {
		if component, ok := d.loader.LookupComponent(d.name); ok {
			d.component = component
		}
	})
}
