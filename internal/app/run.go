package app

import (
	"context"
	"errors"

	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/watcher"
	"golang.org/x/sync/errgroup"
)

// Run executes the configured flow. The registry sweep, the optional config
// watcher and the optional healthcheck server live for the duration of the
// run and are torn down before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.store.Start()
	defer a.store.Stop()
	defer a.snapshots.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	if a.cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(gctx, g)
	}
	if a.cfg.Watch {
		g.Go(func() error {
			return watcher.Watch(gctx, a.cfg.ConfigPath, func() {
				a.snapshots.Reload(gctx)
			})
		})
	}

	a.logger.Info("Starting flow.", "flow", a.cfg.Flow)
	_, state, err := a.engine.RunFlow(gctx, a.cfg.Flow, nil)
	if err != nil {
		cancel()
		_ = g.Wait()
		return err
	}
	a.logger.Info("Flow finished.",
		"ok", state.OK, "fail", state.Failed, "skip", state.Skipped, "stopped", state.Stopped)

	// Tear down the long-lived helpers now that the flow is done.
	cancel()
	if werr := g.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
		return werr
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
