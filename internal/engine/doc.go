// Package engine executes flows.
//
// A run is strictly sequential: the resolved modules are driven one at a
// time against a shared run core, and the next module never starts before
// the previous handler has returned. That makes the order of mutations to
// the working object deterministic and race-free within a run.
//
// The run moves through three phases. The normal phase executes every
// applicable module below the jump boundary and maintains the ok/fail/skip
// counts; a module may request an early stop, which skips the rest of the
// normal phase. The jump phase then executes the deferred modules
// unconditionally, stop or not, so finalization work always happens. The
// run finally reaches the done phase and the core is returned to the
// caller.
//
// Module failures are isolated: a handler error (or panic) is recorded
// against that module and the run proceeds. Nothing a module does can
// prevent the run from reaching the done phase.
package engine
