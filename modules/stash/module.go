// Package stash persists the run's response into the process-wide registry
// store so later runs (or other flows) can retrieve it.
package stash

import (
	"context"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/model"
	"github.com/specialistvlad/botflow/internal/registry"
)

// Module implements the catalog.Module interface for this package. It is
// constructed with the store it writes to.
type Module struct {
	Store *registry.Store
}

// OnRunStash stores the current response under the configured "key" option,
// or under a generated key when none is configured. The key used is written
// back into the working variables as "stash_key".
func (m *Module) OnRunStash(ctx context.Context, core *model.RunCore) error {
	logger := ctxlog.FromContext(ctx)

	id := ""
	if cfg, ok := core.Config["stash"]; ok {
		id = cfg.Options["key"]
	}

	key := m.Store.Put(core.Working.Response, id)
	core.Working.Vars["stash_key"] = key
	logger.Debug("Response stashed.", "key", key)
	return nil
}

// Register registers the handler with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.Add("400-stash", m.OnRunStash)
}
