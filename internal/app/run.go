package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/wirekit/internal/ctxlog"
)

// Run executes capability discovery and reports every declared
// implementation, marking whether it resolved to a compiled-in component.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("🔍 Discovering implementations...", "capability", a.config.Capability, "roots", a.config.ServiceRoots)
	definitions, err := a.scanner.Discover(ctx, a.config.Capability)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(definitions) == 0 {
		a.logger.Warn("No implementations declared for capability.", "capability", a.config.Capability)
		return nil
	}

	present := 0
	for _, definition := range definitions {
		status := "absent "
		if definition.IsPresent() {
			status = "present"
			present++
		}
		fmt.Fprintf(a.outW, "%s  %s\n", status, definition.Name())
	}

	if a.config.Load {
		instances, err := a.scanner.Instances(ctx, a.config.Capability)
		if err != nil {
			return fmt.Errorf("failed to instantiate implementations: %w", err)
		}
		a.logger.Info("Instantiated present implementations.", "count", len(instances))
	}

	a.logger.Info("🏁 Discovery finished.", "declared", len(definitions), "present", present)
	return nil
}
