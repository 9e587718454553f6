package engine

import (
	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/rng"
	"github.com/talgya/anthill/internal/state"
)

// Phase 6: Queen. Spawns a worker/undertaker pair when one of three
// conditions holds, checked in order:
//
//  1. emergency: no living ants at all (visitors don't count) — bypasses the
//     cooldown but still pays the cost and needs the resource floor;
//  2. replacement: corpses are piling up with no living undertaker;
//  3. cooldown: the spawn interval elapsed, resources suffice, population
//     is under the cap.
func (e *Engine) phaseQueen(w *state.World, evs *events.Stream, r *rng.Source) {
	t := &e.tuning

	emergency := w.CountAnts() == 0
	replacement := !emergency &&
		w.CountAntsByRole(colony.RoleUndertaker) == 0 && w.Graveyard.HasPending()
	cooldownMet := w.Tick-w.Meta.LastSpawnTick >= t.SpawnIntervalTicks

	switch {
	case emergency, replacement:
	case cooldownMet && w.CountAnts() < t.PopulationCap:
	default:
		return
	}

	if w.Resources.Get("nutrients") < t.MinResourcesToSpawn ||
		w.Resources.Get("fungus") < t.MinResourcesToSpawn {
		return
	}
	if !w.Resources.CanConsumeAll(map[string]float64{
		"nutrients": t.SpawnCostNutrients,
		"fungus":    t.SpawnCostFungus,
	}) {
		return
	}
	w.Resources.Add("nutrients", -t.SpawnCostNutrients)
	w.Resources.Add("fungus", -t.SpawnCostFungus)

	tile := spawnTile(w)
	worker := colony.NewWorker(colony.EntityID(r.EntityID()), tile)
	undertaker := colony.NewUndertaker(colony.EntityID(r.EntityID()), tile)
	w.Entities = append(w.Entities, worker, undertaker)
	w.Meta.LastSpawnTick = w.Tick

	if emergency {
		evs.Push(w.Tick, events.EmergencySpawn{
			WorkerID:     worker.ID,
			UndertakerID: undertaker.ID,
		})
		return
	}
	evs.Push(w.Tick, events.AntsSpawned{
		WorkerID:          worker.ID,
		UndertakerID:      undertaker.ID,
		NutrientsConsumed: t.SpawnCostNutrients,
		FungusConsumed:    t.SpawnCostFungus,
	})
}

// spawnTile returns where new ants appear: the queen chamber's tile if a
// spawner system declares one, otherwise the origin.
func spawnTile(w *state.World) string {
	for _, id := range w.SortedSystemIDs() {
		sys := w.Systems[id]
		if sys.Type == state.SystemSpawner && sys.Tile != "" {
			return sys.Tile
		}
	}
	return "origin"
}
