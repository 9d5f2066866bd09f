// Package prompt seeds the working object with the inbound request text.
package prompt

import (
	"context"
	"fmt"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// OnRunPrompt fills in the prompt from the module's configured default when
// the triggering request carried none.
func OnRunPrompt(ctx context.Context, core *model.RunCore) error {
	logger := ctxlog.FromContext(ctx)

	if core.Working.Prompt == "" {
		if cfg, ok := core.Config["prompt"]; ok {
			core.Working.Prompt = cfg.Options["default"]
		}
	}
	if core.Working.Prompt == "" {
		return fmt.Errorf("no prompt available and no default configured")
	}

	logger.Debug("Prompt seeded.", "length", len(core.Working.Prompt))
	return nil
}

// Register registers the handler with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.Add("100-prompt", OnRunPrompt)
}
