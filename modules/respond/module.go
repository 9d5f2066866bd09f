// Package respond composes the outbound reply from the working object.
package respond

import (
	"context"
	"fmt"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/model"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// OnRunRespond renders the response text. The optional "greeting" option is
// prefixed to the prompt when present.
func OnRunRespond(ctx context.Context, core *model.RunCore) error {
	logger := ctxlog.FromContext(ctx)

	greeting := ""
	if cfg, ok := core.Config["respond"]; ok {
		greeting = cfg.Options["greeting"]
	}

	if greeting != "" {
		core.Working.Response = fmt.Sprintf("%s %s", greeting, core.Working.Prompt)
	} else {
		core.Working.Response = core.Working.Prompt
	}

	logger.Debug("Response composed.", "length", len(core.Working.Response))
	return nil
}

// Register registers the handler with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.Add("200-respond", OnRunRespond)
}
