package engine

import (
	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// Phase 3: Entities. Every living thing ages, hungers, maybe eats, maybe
// dies. Entities are processed in slice order; the dead are moved into the
// graveyard (ants) or depart with their gift (visitors) on the same tick.
func (e *Engine) phaseEntities(w *state.World, evs *events.Stream) {
	survivors := w.Entities[:0]
	for _, ent := range w.Entities {
		ageAndDecay(ent, 1)

		out := e.tryFeed(ent, &w.Resources)
		switch {
		case out.Transformed:
			evs.Push(w.Tick, events.InfluenceTransformed{
				VisitorID:             ent.ID,
				InfluenceConsumed:     out.InfluenceConsumed,
				StrangeMatterProduced: out.StrangeMatter,
			})
		case out.Ate:
			evs.Push(w.Tick, events.EntityAte{
				EntityID:    ent.ID,
				Food:        ent.Food,
				HungerAfter: ent.Hunger,
			})
		}

		cause := ent.CauseOfDeath()
		if cause == "" {
			survivors = append(survivors, ent)
			continue
		}

		corpse := settleDeath(w, ent, cause)
		if corpse != nil {
			evs.Push(w.Tick, events.EntityDied{
				EntityID:   ent.ID,
				EntityKind: ent.Kind,
				Cause:      cause,
				Tile:       ent.Tile,
				Biomass:    corpse.Biomass,
			})
		} else {
			evs.Push(w.Tick, events.VisitorDeparted{
				VisitorID:   ent.ID,
				VisitorType: ent.Subtype,
				Name:        ent.Name,
				Gift:        ent.GiftOnDeath,
			})
		}
	}
	clearTail(w.Entities, len(survivors))
	w.Entities = survivors
}

// clearTail nils out dropped slots so dead entities are not kept alive by the
// backing array.
func clearTail(s []*colony.Entity, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
