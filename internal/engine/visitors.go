package engine

import (
	"sort"

	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// Phase 8: Visitors. Passive per-tick effects only; visitor aging, eating,
// and departure run through the Entities phase with everything else.
func (e *Engine) phaseVisitors(w *state.World, evs *events.Stream) {
	for _, ent := range w.Entities {
		if ent.IsAnt() || len(ent.Generates) == 0 {
			continue
		}
		names := make([]string, 0, len(ent.Generates))
		for name := range ent.Generates {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			amount := ent.Generates[name]
			w.Resources.Add(name, amount)
			evs.Push(w.Tick, events.PassiveGeneration{
				EntityID: ent.ID,
				Resource: name,
				Amount:   amount,
			})
		}
	}
}
