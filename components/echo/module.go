// Package echo provides a trivial message component together with a
// generated-style forwarding proxy over it, used to exercise proxy-target
// resolution end to end.
package echo

import (
	"reflect"
	"strings"

	"github.com/specialistvlad/wirekit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Echo returns messages it is given.
type Echo struct{}

// Say returns the message unchanged.
func (e *Echo) Say(message string) string {
	return message
}

// Repeat returns the message repeated the given number of times.
func (e *Echo) Repeat(message string, times int) string {
	return strings.Repeat(message, times)
}

// Proxy is a forwarding type over Echo, shaped like the output of a proxy
// generator: same method surface, delegating to the origin instance.
type Proxy struct {
	origin *Echo
}

// Say forwards to the origin Echo.
func (p *Proxy) Say(message string) string {
	return p.origin.Say(message)
}

// Repeat forwards to the origin Echo.
func (p *Proxy) Repeat(message string, times int) string {
	return p.origin.Repeat(message, times)
}

// Register registers the component, its proxy, and the proxy-origin link.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name: "echo.Echo",
		Type: reflect.TypeOf(&Echo{}),
		New:  func() (any, error) { return &Echo{}, nil },
	})
	r.RegisterComponent(&registry.Component{
		Name: "echo.Proxy",
		Type: reflect.TypeOf(&Proxy{}),
		New:  func() (any, error) { return &Proxy{origin: &Echo{}}, nil },
	})
	r.RegisterProxy(reflect.TypeOf(&Proxy{}), reflect.TypeOf(&Echo{}))
}
