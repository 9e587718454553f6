package engine

import (
	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
	"github.com/talgya/anthill/internal/world"
)

// Phase 4: Undertakers. Each undertaker works one corpse at a time; an idle
// one claims the oldest unassigned corpse. A finished corpse returns its full
// biomass to the ledger as nutrients and contaminates the compost heap. While
// the compost heap is blighted, the whole crew stands idle.
func (e *Engine) phaseUndertakers(w *state.World, evs *events.Stream) {
	if !w.Graveyard.HasPending() {
		return
	}
	compost := firstTileOfType(w.Map, world.TileCompost)
	if compost != nil && compost.Blighted {
		return
	}

	for _, ent := range w.Entities {
		if !ent.IsAnt() || ent.Role != colony.RoleUndertaker {
			continue
		}

		idx := w.Graveyard.AssignedTo(ent.ID)
		if idx < 0 {
			if next := w.Graveyard.NextUnassigned(); next >= 0 {
				w.Graveyard.Corpses[next].AssignedTo = ent.ID
				w.Graveyard.Corpses[next].ProcessingTicks = 0
			}
			continue
		}

		w.Graveyard.Corpses[idx].ProcessingTicks++
		if w.Graveyard.Corpses[idx].ProcessingTicks < e.tuning.CorpseProcessingTicks {
			continue
		}

		c := w.Graveyard.Finish(idx)
		w.Resources.Add("nutrients", c.Biomass)
		contamination := 0.0
		if compost != nil {
			compost.AddContamination(e.tuning.ContaminationPerCorpse)
			contamination = compost.Contamination
		}
		evs.Push(w.Tick, events.CorpseProcessed{
			UndertakerID:   ent.ID,
			EntityID:       c.EntityID,
			Nutrients:      c.Biomass,
			TotalProcessed: w.Graveyard.TotalProcessed,
			Contamination:  contamination,
		})
	}
}

// firstTileOfType returns the lexicographically first tile of the given type,
// or nil.
func firstTileOfType(m *world.Map, t world.TileType) *world.Tile {
	for _, id := range m.SortedIDs() {
		if tile := m.Get(id); tile.Type == t {
			return tile
		}
	}
	return nil
}
