// Package halt requests an early stop of the normal phase when its
// configured condition holds.
package halt

import (
	"context"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// OnRunHalt sets the stop flag when the "when" option is "always" or when
// the working variable named by the "var" option reads "true". Jump-phase
// modules still run after a halt.
func OnRunHalt(ctx context.Context, core *model.RunCore) error {
	cfg, ok := core.Config["halt"]
	if !ok {
		return nil
	}

	stop := false
	switch {
	case cfg.Options["when"] == "always":
		stop = true
	case cfg.Options["var"] != "":
		stop = core.Working.Vars[cfg.Options["var"]] == "true"
	}

	if stop {
		core.Working.Stop = true
		ctxlog.FromContext(ctx).Info("Halt condition met; stopping normal phase.")
	}
	return nil
}

// Register registers the handler with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.Add("300-halt", OnRunHalt)
}
