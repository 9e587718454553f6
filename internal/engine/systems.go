package engine

import (
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// Phase 2: Systems. Every production system pays its consumption and adds its
// generation, in sorted id order. A system that cannot fully pay does not run
// at all; the first such tick flags it stalled and emits an event. The flag
// clears silently once the system runs again.
func (e *Engine) phaseSystems(w *state.World, evs *events.Stream) {
	for _, id := range w.SortedSystemIDs() {
		sys := w.Systems[id]
		if systemSuppressed(w, sys) {
			continue
		}

		if !sys.CanRun(&w.Resources) {
			if !sys.Stalled {
				sys.Stalled = true
				evs.Push(w.Tick, events.SystemStalled{
					SystemID: id,
					Missing:  missingFor(&w.Resources, sys),
				})
			}
			continue
		}
		sys.Stalled = false

		runSystem(w, sys)
		if len(sys.Generates) > 0 || len(sys.Consumes) > 0 {
			evs.Push(w.Tick, events.SystemProduced{
				SystemID: id,
				Produced: sys.Generates,
				Consumed: sys.Consumes,
			})
		}
	}
}

// runSystem applies one tick of a runnable system's rates. Callers check
// CanRun first, so every consumption is fully paid.
func runSystem(w *state.World, sys *state.System) {
	for name, amount := range sys.Consumes {
		w.Resources.Add(name, -amount)
	}
	w.Resources.AddAll(sys.Generates)
}

// systemSuppressed reports whether the system's tile is under blight.
// A blighted tile contributes nothing, in either direction.
func systemSuppressed(w *state.World, sys *state.System) bool {
	if sys.Tile == "" {
		return false
	}
	tile := w.Map.Get(sys.Tile)
	return tile != nil && tile.Blighted
}

// missingFor reports how much of each consumed resource is short.
func missingFor(res *state.Resources, sys *state.System) map[string]float64 {
	missing := make(map[string]float64)
	for name, amount := range sys.Consumes {
		if have := res.Get(name); have < amount {
			missing[name] = amount - have
		}
	}
	return missing
}
