package config

import "maps"

// WorkingObject is the mutable per-run state threaded through every module.
// All fields are declared and typed up front; modules communicate through
// them instead of an untyped bag of keys.
type WorkingObject struct {
	// Prompt is the inbound request text the flow operates on.
	Prompt string
	// Response accumulates the outbound reply produced by the modules.
	Response string
	// Channel and User identify where the triggering request came from.
	Channel string
	User    string
	// Attachments collects references to artifacts produced during the run.
	Attachments []string
	// Vars holds free-form string state shared between modules.
	Vars map[string]string
	// Stop requests an early end of the normal phase. Jump-phase modules
	// still run after a stop.
	Stop bool
}

// Clone returns a deep copy. New runs always operate on a clone so that no
// module ever mutates the template held by the current config snapshot.
func (w *WorkingObject) Clone() *WorkingObject {
	if w == nil {
		return &WorkingObject{Vars: make(map[string]string)}
	}
	out := *w
	out.Attachments = append([]string(nil), w.Attachments...)
	out.Vars = make(map[string]string, len(w.Vars))
	maps.Copy(out.Vars, w.Vars)
	return &out
}
