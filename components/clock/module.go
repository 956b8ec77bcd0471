// Package clock provides a wall-clock component backed by system time.
package clock

import (
	"reflect"
	"time"

	"github.com/specialistvlad/wirekit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Clock reads the local system time.
type Clock struct{}

// Now returns the current time rendered with the given layout.
func (c *Clock) Now(layout string) string {
	return time.Now().Format(layout)
}

// Unix returns the current time as a Unix timestamp in seconds.
func (c *Clock) Unix() int64 {
	return time.Now().Unix()
}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name: "clock.Clock",
		Type: reflect.TypeOf(&Clock{}),
		New:  func() (any, error) { return &Clock{}, nil },
	})
}
