// Package flow decides which cataloged modules apply to a requested flow.
//
// Resolution is a pure function over (slots, flow name, config): a module
// applies iff the config has an entry under its name whose flow list contains
// the requested flow or the literal "all". Modules without a config entry
// are excluded from the run entirely; they are neither counted nor executed.
package flow

import (
	"sort"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/config"
)

// Plan is the resolved execution plan for one run, partitioned into the
// normal and jump phases. Both partitions are sorted ascending by order
// number with name as the tiebreak.
type Plan struct {
	Normal []catalog.Slot
	Jump   []catalog.Slot
}

// Resolve selects the applicable slots for the named flow.
func Resolve(slots []catalog.Slot, flowName string, modules map[string]*config.ModuleConfig) Plan {
	var plan Plan
	for _, slot := range slots {
		cfg, ok := modules[slot.Name]
		if !ok || !cfg.AppliesTo(flowName) {
			continue
		}
		if slot.Jump() {
			plan.Jump = append(plan.Jump, slot)
		} else {
			plan.Normal = append(plan.Normal, slot)
		}
	}
	sortSlots(plan.Normal)
	sortSlots(plan.Jump)
	return plan
}

func sortSlots(slots []catalog.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Order != slots[j].Order {
			return slots[i].Order < slots[j].Order
		}
		return slots[i].Name < slots[j].Name
	})
}
