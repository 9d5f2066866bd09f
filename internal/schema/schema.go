// Package schema holds the HCL tag structs the loader decodes configuration
// files into before translating them to the format-agnostic model.
package schema

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of a configuration file.
type File struct {
	Modules []*ModuleBlock `hcl:"module,block"`
	Working *WorkingBlock  `hcl:"working,block"`
	Body    hcl.Body       `hcl:",remain"`
}

// ModuleBlock represents a `module "<name>" { ... }` block. The flow
// attribute is kept as a raw expression because it accepts either a single
// string or a list of strings.
type ModuleBlock struct {
	Name    string         `hcl:"name,label"`
	Flow    hcl.Expression `hcl:"flow"`
	Options *OptionsBlock  `hcl:"options,block"`
}

// OptionsBlock carries the free-form per-module settings.
type OptionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// WorkingBlock represents the `working { ... }` template block new runs are
// cloned from.
type WorkingBlock struct {
	Prompt  string            `hcl:"prompt,optional"`
	Channel string            `hcl:"channel,optional"`
	User    string            `hcl:"user,optional"`
	Vars    map[string]string `hcl:"vars,optional"`
}
