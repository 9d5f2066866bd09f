package model

import (
	"time"

	"github.com/specialistvlad/botflow/internal/config"
)

// Phase is the executor's position in the run state machine.
type Phase string

const (
	// PhaseRun is the initial phase executing modules below the jump boundary.
	PhaseRun Phase = "run"
	// PhaseJump executes the deferred finalization modules.
	PhaseJump Phase = "jump"
	// PhaseDone is terminal.
	PhaseDone Phase = "done"
)

// ResultKind distinguishes normal-phase results from jump-phase results.
type ResultKind string

const (
	KindNormal ResultKind = "normal"
	KindJump   ResultKind = "jump"
)

// ModuleResult records the outcome of a single module invocation.
type ModuleResult struct {
	Name     string
	Kind     ResultKind
	OK       bool
	Duration time.Duration
	// Err is the truncated error message; empty on success.
	Err string
}

// RunState is the executor's observable progress for one flow run. Counts
// reflect normal-phase modules only; jump results are recorded in Results
// but never counted.
type RunState struct {
	Flow      string
	StartedAt time.Time
	OK        int
	Failed    int
	Skipped   int
	// Total is the number of applicable normal-phase modules.
	Total int
	// Current names the module executing right now; empty once done.
	Current string
	Results []ModuleResult
	Stopped bool
	Phase   Phase
}

// RunCore pairs the shared module configuration with one run's working
// object. Config is shared by reference across every run derived from the
// same snapshot and is read-only by convention; only Working may be mutated
// during a run.
type RunCore struct {
	Config  map[string]*config.ModuleConfig
	Working *config.WorkingObject
}
