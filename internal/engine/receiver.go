package engine

import (
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/rng"
	"github.com/talgya/anthill/internal/state"
)

// Phase 7: Receiver. The antenna listens (a slow influence drain), needs
// periodic maintenance, and when enough influence has accumulated it spends
// some on a summon roll. The cost is paid and the cooldown starts whether or
// not anything answers.
func (e *Engine) phaseReceiver(w *state.World, evs *events.Stream, r *rng.Source) {
	t := &e.tuning

	_, antenna := findAntenna(w)
	if antenna == nil {
		return
	}

	e.maintainReceiver(w, evs)
	if w.Meta.ReceiverSilent {
		return
	}
	if systemSuppressed(w, antenna) {
		return
	}

	if w.Resources.Get("influence") > t.ListeningDrain {
		w.Resources.Add("influence", -t.ListeningDrain)
	}

	if w.Resources.Get("influence") < t.SummonCost {
		return
	}
	if w.Meta.LastSummonTick > 0 && w.Tick-w.Meta.LastSummonTick < t.SummonCooldownTicks {
		return
	}

	w.Resources.Add("influence", -t.SummonCost)
	w.Meta.LastSummonTick = w.Tick

	success := r.Chance(t.SummonChance)
	evs.Push(w.Tick, events.InfluenceSpent{Amount: t.SummonCost, Success: success})
	if !success {
		evs.Push(w.Tick, events.SummonFailed{})
		return
	}

	tile := antenna.Tile
	if tile == "" {
		tile = "origin"
	}
	visitor := e.summonVisitor(r, tile)
	w.Entities = append(w.Entities, visitor)
	evs.Push(w.Tick, events.VisitorArrived{
		VisitorID:   visitor.ID,
		VisitorType: visitor.Subtype,
		Name:        visitor.Name,
	})
}

// summonVisitor draws a visitor subtype from the tuning weights and builds
// the entity on the given tile.
func (e *Engine) summonVisitor(r *rng.Source, tile string) *colony.Entity {
	weights := []float64{
		e.tuning.VisitorWeights.Wanderer,
		e.tuning.VisitorWeights.Observer,
		e.tuning.VisitorWeights.Hungry,
	}
	idx, ok := sampleuv.NewWeighted(weights, r).Take()
	if !ok {
		idx = 0
	}

	id := colony.EntityID(r.VisitorID())
	switch idx {
	case 1:
		return colony.NewObserver(id, tile)
	case 2:
		return colony.NewHungry(id, tile)
	default:
		return colony.NewWanderer(id, tile)
	}
}

// maintainReceiver runs the maintenance clock. A due payment the colony can
// cover is taken silently; one it cannot cover silences the receiver until
// strange matter is found.
func (e *Engine) maintainReceiver(w *state.World, evs *events.Stream) {
	t := &e.tuning

	goal, ok := w.Meta.Goals["receiver_maintenance"]
	if !ok {
		return
	}
	interval := goal.IntervalTicks
	if interval == 0 {
		interval = t.MaintenanceIntervalTicks
	}

	if w.Meta.ReceiverSilent {
		if w.Resources.TryConsume("strange_matter", t.MaintenanceCost) {
			w.Meta.ReceiverSilent = false
			goal.LastMaintained = w.Tick
			w.Meta.Goals["receiver_maintenance"] = goal
			evs.Push(w.Tick, events.ReceiverRestored{})
		}
		return
	}

	if w.Tick-goal.LastMaintained < interval {
		return
	}
	if w.Resources.TryConsume("strange_matter", t.MaintenanceCost) {
		goal.LastMaintained = w.Tick
		w.Meta.Goals["receiver_maintenance"] = goal
		return
	}
	w.Meta.ReceiverSilent = true
	w.Meta.ReceiverFailedTick = w.Tick
	evs.Push(w.Tick, events.ReceiverSilent{})
}

// findAntenna returns the first antenna-type system in sorted id order.
func findAntenna(w *state.World) (string, *state.System) {
	for _, id := range w.SortedSystemIDs() {
		if sys := w.Systems[id]; sys.Type == state.SystemAntenna {
			return id, sys
		}
	}
	return "", nil
}
