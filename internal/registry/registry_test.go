package registry

import (
	"context"
	"reflect"
	"testing"

	"github.com/specialistvlad/wirekit/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type pump struct{}

func (p *pump) Prime(level int) int { return level }

var pumpType = reflect.TypeOf(&pump{})

func pumpComponent() *Component {
	return &Component{
		Name: "pump.Pump",
		Type: pumpType,
		New:  func() (any, error) { return &pump{}, nil },
	}
}

func TestRegisterComponent(t *testing.T) {
	t.Run("registers and looks up by name", func(t *testing.T) {
		reg := New()
		reg.RegisterComponent(pumpComponent())

		component, ok := reg.LookupComponent("pump.Pump")
		require.True(t, ok)
		assert.Equal(t, pumpType, component.Type)

		_, ok = reg.LookupComponent("pump.Unknown")
		assert.False(t, ok)

		assert.Equal(t, []string{"pump.Pump"}, reg.ComponentNames())
	})

	t.Run("panics on duplicate name", func(t *testing.T) {
		reg := New()
		reg.RegisterComponent(pumpComponent())
		assert.Panics(t, func() { reg.RegisterComponent(pumpComponent()) })
	})

	t.Run("panics on incomplete registration", func(t *testing.T) {
		reg := New()
		assert.Panics(t, func() { reg.RegisterComponent(&Component{Name: "pump.Pump"}) })
	})
}

func TestMethodMetadata(t *testing.T) {
	t.Run("registers and fetches per type and method", func(t *testing.T) {
		reg := New()
		reg.RegisterMethodMetadata(pumpType, &MethodMetadata{Name: "Prime", Params: []string{"level"}})

		meta, ok := reg.MethodMetadataFor(pumpType, "Prime")
		require.True(t, ok)
		assert.Equal(t, []string{"level"}, meta.Params)

		_, ok = reg.MethodMetadataFor(pumpType, "Drain")
		assert.False(t, ok)

		_, ok = reg.MethodMetadataFor(reflect.TypeOf(42), "Prime")
		assert.False(t, ok)
	})

	t.Run("panics on duplicate method metadata", func(t *testing.T) {
		reg := New()
		reg.RegisterMethodMetadata(pumpType, &MethodMetadata{Name: "Prime"})
		assert.Panics(t, func() {
			reg.RegisterMethodMetadata(pumpType, &MethodMetadata{Name: "Prime"})
		})
	})
}

func TestProxyOrigin(t *testing.T) {
	type pumpProxy struct{}
	proxyType := reflect.TypeOf(&pumpProxy{})

	reg := New()
	reg.RegisterProxy(proxyType, pumpType)

	origin, ok := reg.ProxyOrigin(proxyType)
	require.True(t, ok)
	assert.Equal(t, pumpType, origin)

	_, ok = reg.ProxyOrigin(pumpType)
	assert.False(t, ok)

	assert.Panics(t, func() { reg.RegisterProxy(proxyType, pumpType) })
}

func TestApplyManifests(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches metadata to registered components", func(t *testing.T) {
		reg := New()
		reg.RegisterComponent(pumpComponent())

		reg.ApplyManifests(ctx, []*manifest.Component{{
			Name: "pump.Pump",
			Methods: map[string]*manifest.Method{
				"Prime": {
					Name:        "Prime",
					Params:      []string{"level"},
					Annotations: map[string]cty.Value{"critical": cty.True},
				},
			},
		}})

		meta, ok := reg.MethodMetadataFor(pumpType, "Prime")
		require.True(t, ok)
		assert.Equal(t, cty.True, meta.Annotations["critical"])
	})

	t.Run("skips manifests for unregistered components", func(t *testing.T) {
		reg := New()
		assert.NotPanics(t, func() {
			reg.ApplyManifests(ctx, []*manifest.Component{{
				Name:    "ghost.Component",
				Methods: map[string]*manifest.Method{"Walk": {Name: "Walk"}},
			}})
		})
	})
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("passes when manifests and code agree", func(t *testing.T) {
		reg := New()
		reg.RegisterComponent(pumpComponent())
		reg.RegisterMethodMetadata(pumpType, &MethodMetadata{Name: "Prime", Params: []string{"level"}})

		assert.NoError(t, reg.Validate(ctx))
	})

	t.Run("fails for a manifest method missing on the Go type", func(t *testing.T) {
		reg := New()
		reg.RegisterComponent(pumpComponent())
		reg.RegisterMethodMetadata(pumpType, &MethodMetadata{Name: "Drain"})

		err := reg.Validate(ctx)
		assert.ErrorContains(t, err, "method 'Drain' which does not exist")
	})

	t.Run("fails on parameter arity mismatch", func(t *testing.T) {
		reg := New()
		reg.RegisterComponent(pumpComponent())
		reg.RegisterMethodMetadata(pumpType, &MethodMetadata{Name: "Prime", Params: []string{"level", "extra"}})

		err := reg.Validate(ctx)
		assert.ErrorContains(t, err, "manifest declares 2 params but Go method takes 1")
	})
}
