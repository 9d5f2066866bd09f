package app

import (
	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/registry"
	"github.com/specialistvlad/botflow/modules/audit"
	"github.com/specialistvlad/botflow/modules/halt"
	"github.com/specialistvlad/botflow/modules/prompt"
	"github.com/specialistvlad/botflow/modules/respond"
	"github.com/specialistvlad/botflow/modules/stash"
)

// coreModules is the definitive list of all modules compiled into the
// botflow binary. Modules that persist state receive the shared store.
func coreModules(store *registry.Store) []catalog.Module {
	return []catalog.Module{
		&prompt.Module{},
		&respond.Module{},
		&halt.Module{},
		&stash.Module{Store: store},
		&audit.Module{Store: store},
	}
}
