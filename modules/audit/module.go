// Package audit is a jump-phase finalizer: it records the run outcome into
// the registry store regardless of how the normal phase ended.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/model"
	"github.com/specialistvlad/botflow/internal/registry"
)

// Module implements the catalog.Module interface for this package.
type Module struct {
	Store *registry.Store
}

// Record is the audit entry stored per finished run.
type Record struct {
	Channel  string
	User     string
	Response string
	Stopped  bool
	At       time.Time
}

// OnRunAudit writes the audit record. It runs in the jump phase, so it
// executes even when an earlier module stopped the run.
func (m *Module) OnRunAudit(ctx context.Context, core *model.RunCore) error {
	logger := ctxlog.FromContext(ctx)

	rec := Record{
		Channel:  core.Working.Channel,
		User:     core.Working.User,
		Response: core.Working.Response,
		Stopped:  core.Working.Stop,
		At:       time.Now(),
	}
	key := m.Store.Put(rec, fmt.Sprintf("audit:%d", rec.At.UnixNano()))
	logger.Info("Run audited.", "key", key, "stopped", rec.Stopped)
	return nil
}

// Register registers the handler with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.Add("9000-audit", m.OnRunAudit)
}
