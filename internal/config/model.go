package config

import (
	"errors"
	"slices"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration: one entry per configured module plus the
// working-object template for new runs.
type Model struct {
	Modules map[string]*ModuleConfig
	Working *WorkingObject
}

// ModuleConfig holds the per-module settings from a `module` block.
type ModuleConfig struct {
	// Flows lists the flow names this module participates in. The literal
	// "all" makes the module apply to every flow.
	Flows []string
	// Options carries free-form module settings as evaluated strings.
	Options map[string]string
}

// AppliesTo reports whether the module participates in the named flow.
func (m *ModuleConfig) AppliesTo(flow string) bool {
	return slices.Contains(m.Flows, flow) || slices.Contains(m.Flows, "all")
}

// Validate checks that the model is usable as a base snapshot. A missing
// working template is filled in with an empty one; a nil module map is an
// error because no flow could ever resolve any modules.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("config model is nil")
	}
	if m.Modules == nil {
		return errors.New("config model has no module entries")
	}
	if m.Working == nil {
		m.Working = &WorkingObject{}
	}
	return nil
}
