package app

import (
	"github.com/specialistvlad/wirekit/components/clock"
	"github.com/specialistvlad/wirekit/components/echo"
	"github.com/specialistvlad/wirekit/internal/registry"
)

// coreComponents is the definitive list of all components that are compiled
// into the wirekit binary.
var coreComponents = []registry.Module{
	&clock.Module{},
	&echo.Module{},
}
