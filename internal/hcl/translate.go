package hcl

import (
	"fmt"

	"github.com/specialistvlad/botflow/internal/config"
	"github.com/specialistvlad/botflow/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateModule converts a decoded module block into the agnostic model.
func (l *Loader) translateModule(block *schema.ModuleBlock) (*config.ModuleConfig, error) {
	flows, err := decodeFlows(block)
	if err != nil {
		return nil, err
	}

	options := make(map[string]string)
	if block.Options != nil {
		attrs, diags := block.Options.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid options block: %w", diags)
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("option %q: %w", name, diags)
			}
			str, err := convert.Convert(val, cty.String)
			if err != nil {
				return nil, fmt.Errorf("option %q is not convertible to string: %w", name, err)
			}
			if str.IsNull() {
				continue
			}
			options[name] = str.AsString()
		}
	}

	return &config.ModuleConfig{Flows: flows, Options: options}, nil
}

// decodeFlows evaluates the flow attribute, which accepts either a single
// string or a list of strings.
func decodeFlows(block *schema.ModuleBlock) ([]string, error) {
	val, diags := block.Flow.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid flow attribute: %w", diags)
	}
	if val.IsNull() {
		return nil, fmt.Errorf("flow attribute must not be null")
	}

	if val.Type() == cty.String {
		return []string{val.AsString()}, nil
	}

	if !val.CanIterateElements() {
		return nil, fmt.Errorf("flow attribute must be a string or a list of strings, got %s", val.Type().FriendlyName())
	}
	var flows []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		str, err := convert.Convert(elem, cty.String)
		if err != nil || str.IsNull() {
			return nil, fmt.Errorf("flow list elements must be strings, got %s", elem.Type().FriendlyName())
		}
		flows = append(flows, str.AsString())
	}
	if len(flows) == 0 {
		return nil, fmt.Errorf("flow attribute must name at least one flow")
	}
	return flows, nil
}
