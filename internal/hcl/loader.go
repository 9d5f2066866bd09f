package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/botflow/internal/config"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/fsutil"
	"github.com/specialistvlad/botflow/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds, parses and merges all .hcl files under the given paths into a
// single configuration model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path %q: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl configuration files found under %v", paths)
	}
	logger.Debug("Found HCL configuration files.", "count", len(files))

	model := &config.Model{Modules: make(map[string]*config.ModuleConfig)}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var f schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range f.Modules {
			mc, err := l.translateModule(block)
			if err != nil {
				return nil, fmt.Errorf("module %q in %s: %w", block.Name, file, err)
			}
			model.Modules[block.Name] = mc
		}
		if f.Working != nil {
			model.Working = translateWorking(f.Working)
		}
		logger.Debug("Loaded configuration file.", "file", file, "modules", len(f.Modules))
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Info("Configuration loaded.", "modules", len(model.Modules))
	return model, nil
}

func translateWorking(w *schema.WorkingBlock) *config.WorkingObject {
	vars := w.Vars
	if vars == nil {
		vars = make(map[string]string)
	}
	return &config.WorkingObject{
		Prompt:  w.Prompt,
		Channel: w.Channel,
		User:    w.User,
		Vars:    vars,
	}
}
