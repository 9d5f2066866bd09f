// Package catalog holds the registration table of executable modules.
//
// Modules are identified by strings of the form "<digits>-<name>", where the
// numeric prefix fixes the execution order within a run. Identifiers that do
// not match the pattern are discarded rather than treated as errors, so a
// provider may hand the catalog an unfiltered listing.
//
// During application startup the catalog is populated by the compiled-in
// modules; registering two modules under the same name is a programmer error
// and panics.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"

	"github.com/specialistvlad/botflow/internal/model"
)

// JumpBoundary splits the catalog into the normal and jump execution phases:
// modules with an order number at or above it run in the deferred jump phase.
const JumpBoundary = 9000

// Handler executes one module against the shared run core. Handlers mutate
// the run through core.Working and report failure through the returned error.
type Handler func(ctx context.Context, core *model.RunCore) error

// Slot is one cataloged unit of work. Immutable once registered.
type Slot struct {
	Order   int
	Name    string
	Handler Handler
}

// Jump reports whether the slot belongs to the deferred jump phase.
func (s Slot) Jump() bool {
	return s.Order >= JumpBoundary
}

// Module is the interface all built-in modules implement to be registered.
type Module interface {
	Register(c *Catalog)
}

// Catalog is the registration table mapping module names to slots.
type Catalog struct {
	slots map[string]Slot
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{slots: make(map[string]Slot)}
}

var slotIDPattern = regexp.MustCompile(`^(\d+)-(.+)$`)

// ParseSlotID splits an identifier of the form "<digits>-<name>". It returns
// ok=false for anything else.
func ParseSlotID(id string) (order int, name string, ok bool) {
	m := slotIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, "", false
	}
	order, err := strconv.Atoi(m[1])
	if err != nil {
		// Digits too large for an int; treat as non-matching.
		return 0, "", false
	}
	return order, m[2], true
}

// Add registers a handler under the given identifier. Identifiers that do
// not match "<digits>-<name>" are discarded with a log line. Registering a
// duplicate name panics.
func (c *Catalog) Add(id string, handler Handler) {
	order, name, ok := ParseSlotID(id)
	if !ok {
		slog.Debug("Discarding module identifier without order prefix.", "id", id)
		return
	}
	if _, exists := c.slots[name]; exists {
		panic(fmt.Sprintf("module with name '%s' already registered", name))
	}
	slog.Debug("Registering module.", "name", name, "order", order)
	c.slots[name] = Slot{Order: order, Name: name, Handler: handler}
}

// Len returns the number of cataloged modules.
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Slots returns all cataloged slots sorted ascending by order number, ties
// broken by name.
func (c *Catalog) Slots() []Slot {
	out := make([]Slot, 0, len(c.slots))
	for _, slot := range c.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}
