package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/dashboard"
	"github.com/specialistvlad/botflow/internal/flow"
	"github.com/specialistvlad/botflow/internal/hotload"
	"github.com/specialistvlad/botflow/internal/model"
)

// maxErrLen caps the recorded error message per module result.
const maxErrLen = 200

// Engine resolves and executes flows against the current config snapshot.
type Engine struct {
	catalog   *catalog.Catalog
	snapshots *hotload.Loader
	dash      *dashboard.Renderer
	// moduleTimeout bounds each handler invocation; zero disables it.
	// Cancellation is cooperative: the handler's context is cancelled at
	// the deadline and the executor waits for it to return.
	moduleTimeout time.Duration
}

// New wires an engine from its collaborators. A nil renderer disables
// progress output.
func New(cat *catalog.Catalog, snapshots *hotload.Loader, dash *dashboard.Renderer, moduleTimeout time.Duration) *Engine {
	if dash == nil {
		dash = dashboard.New(nil, 0)
	}
	return &Engine{
		catalog:       cat,
		snapshots:     snapshots,
		dash:          dash,
		moduleTimeout: moduleTimeout,
	}
}

// NewRunCore creates a fresh run core from the current snapshot: the module
// config is shared by reference, the working object is deep-cloned from the
// template so the run can never mutate the snapshot.
func (e *Engine) NewRunCore() *model.RunCore {
	snap := e.snapshots.Current()
	return &model.RunCore{
		Config:  snap.Modules,
		Working: snap.Working.Clone(),
	}
}

// RunFlow executes the named flow and returns its final run core and state.
// The returned error covers engine-level problems only; individual module
// failures are contained in the state's results and never abort the run.
func (e *Engine) RunFlow(ctx context.Context, flowName string, core *model.RunCore) (*model.RunCore, *model.RunState, error) {
	logger := ctxlog.FromContext(ctx).With("flow", flowName)
	if core == nil {
		core = e.NewRunCore()
	}

	plan := flow.Resolve(e.catalog.Slots(), flowName, core.Config)
	state := &model.RunState{
		Flow:      flowName,
		StartedAt: time.Now(),
		Total:     len(plan.Normal),
		Phase:     model.PhaseRun,
	}
	logger.Info("Flow run starting.", "normal", len(plan.Normal), "jump", len(plan.Jump))
	e.dash.Render(state, true)

	for i, slot := range plan.Normal {
		state.Current = slot.Name
		e.dash.Render(state, false)
		e.invoke(ctx, logger, slot, core, state, model.KindNormal)

		if core.Working.Stop {
			state.Stopped = true
			state.Skipped = len(plan.Normal) - i - 1
			logger.Info("Flow stopped early.", "after", slot.Name, "skipped", state.Skipped)
			break
		}
	}

	if len(plan.Jump) > 0 {
		state.Phase = model.PhaseJump
		e.dash.Render(state, true)
		for _, slot := range plan.Jump {
			state.Current = slot.Name
			e.dash.Render(state, false)
			e.invoke(ctx, logger, slot, core, state, model.KindJump)
		}
	}

	state.Phase = model.PhaseDone
	state.Current = ""
	e.dash.Render(state, true)
	logger.Info("Flow run finished.",
		"ok", state.OK, "fail", state.Failed, "skip", state.Skipped,
		"duration", time.Since(state.StartedAt).Round(time.Millisecond))
	return core, state, nil
}

// invoke runs a single module, records its result and updates the counts.
// Only normal-phase results feed the ok/fail counters.
func (e *Engine) invoke(ctx context.Context, logger *slog.Logger, slot catalog.Slot, core *model.RunCore, state *model.RunState, kind model.ResultKind) {
	start := time.Now()
	err := e.call(ctx, slot, core)

	res := model.ModuleResult{
		Name:     slot.Name,
		Kind:     kind,
		OK:       err == nil,
		Duration: time.Since(start),
	}
	if err != nil {
		res.Err = truncate(err.Error(), maxErrLen)
		logger.Error("Module failed.", "module", slot.Name, "error", err)
	}
	state.Results = append(state.Results, res)

	if kind == model.KindNormal {
		if err == nil {
			state.OK++
		} else {
			state.Failed++
		}
	}
}

// call executes the handler with the per-module deadline applied and turns
// a handler panic into an error so one module can never take down the run.
func (e *Engine) call(ctx context.Context, slot catalog.Slot, core *model.RunCore) (err error) {
	if e.moduleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.moduleTimeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("module %s panicked: %v", slot.Name, r)
		}
	}()
	return slot.Handler(ctx, core)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
