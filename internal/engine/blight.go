package engine

import (
	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/rng"
	"github.com/talgya/anthill/internal/state"
)

// Phase 5: Blight. Active blights tick down and clear; every contaminated,
// unblighted tile rolls its contamination as a per-tick blight probability.
// Onset kills everything standing on the tile. Tiles are visited in sorted id
// order so the draw sequence is stable.
func (e *Engine) phaseBlight(w *state.World, evs *events.Stream, r *rng.Source) {
	for _, id := range w.Map.SortedIDs() {
		tile := w.Map.Get(id)

		if tile.Blighted {
			if tile.TickBlight() {
				evs.Push(w.Tick, events.BlightCleared{Tile: id})
			}
			continue
		}

		if tile.Contamination <= 0 {
			continue
		}
		if !r.Chance(tile.Contamination) {
			continue
		}

		tile.StartBlight(e.tuning.BlightDurationTicks)
		evs.Push(w.Tick, events.BlightStruck{
			Tile:          id,
			Contamination: tile.Contamination,
			DurationTicks: e.tuning.BlightDurationTicks,
		})
		e.killOnTile(w, evs, id)
	}
}

// killOnTile removes every entity standing on a freshly blighted tile.
func (e *Engine) killOnTile(w *state.World, evs *events.Stream, tileID string) {
	survivors := w.Entities[:0]
	for _, ent := range w.Entities {
		if ent.Tile != tileID {
			survivors = append(survivors, ent)
			continue
		}
		evs.Push(w.Tick, events.BlightKill{EntityID: ent.ID, Tile: tileID})
		corpse := settleDeath(w, ent, colony.CauseBlight)
		if corpse != nil {
			evs.Push(w.Tick, events.EntityDied{
				EntityID:   ent.ID,
				EntityKind: ent.Kind,
				Cause:      colony.CauseBlight,
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
