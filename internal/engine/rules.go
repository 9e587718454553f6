package engine

import (
	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/state"
)

// Shared lifecycle rules. Both the full-fidelity Step path and the bulk
// Approximate path call these, so aging, hunger arithmetic, feeding, and
// death handling cannot diverge between the two.

// ageAndDecay advances one entity by one tick of time. hungerScale is 1 for
// live ticks and the offline discount for approximated ones.
func ageAndDecay(ent *colony.Entity, hungerScale float64) {
	ent.Age++
	ent.Hunger -= ent.HungerRate * hungerScale
	if ent.Hunger < 0 {
		ent.Hunger = 0
	}
}

// feedOutcome reports what tryFeed did, so the live path can emit events and
// the bulk path can ignore them.
type feedOutcome struct {
	Ate               bool
	Transformed       bool
	InfluenceConsumed float64
	StrangeMatter     float64
}

// tryFeed feeds one hungry entity from the ledger if its food is available.
// Hungry visitors metabolize influence in sips and exhale strange matter;
// everything else eats one whole unit.
func (e *Engine) tryFeed(ent *colony.Entity, res *state.Resources) feedOutcome {
	t := &e.tuning
	if ent.Hunger >= t.HungerEatThreshold || ent.Food == "" {
		return feedOutcome{}
	}

	if ent.Transforms && ent.Food == "influence" {
		if !res.TryConsume("influence", t.HungryInfluenceConsume) {
			return feedOutcome{}
		}
		res.Add("strange_matter", t.HungryStrangeMatterProduce)
		ent.Hunger += t.HungryHungerGain
		if ent.Hunger > t.MaxHunger {
			ent.Hunger = t.MaxHunger
		}
		return feedOutcome{
			Ate:               true,
			Transformed:       true,
			InfluenceConsumed: t.HungryInfluenceConsume,
			StrangeMatter:     t.HungryStrangeMatterProduce,
		}
	}

	if !res.TryConsume(ent.Food, 1) {
		return feedOutcome{}
	}
	ent.Hunger += t.HungerGainFromEating
	if ent.Hunger > t.MaxHunger {
		ent.Hunger = t.MaxHunger
	}
	return feedOutcome{Ate: true}
}

// settleDeath moves a dead entity's remains into the world: visitors deposit
// their departure gift straight into the ledger, ants become corpses in the
// graveyard. An undertaker that dies mid-processing releases its corpse back
// to the pending pool. Returns the corpse for ants, nil for visitors.
func settleDeath(w *state.World, ent *colony.Entity, cause colony.DeathCause) *colony.Corpse {
	if !ent.IsAnt() {
		if len(ent.GiftOnDeath) > 0 {
			w.Resources.AddAll(ent.GiftOnDeath)
		}
		return nil
	}

	w.Graveyard.Release(ent.ID)
	c := colony.Corpse{
		EntityID:   ent.ID,
		EntityKind: ent.Kind,
		DeathTick:  w.Tick,
		Cause:      cause,
		Tile:       ent.Tile,
		Biomass:    ent.Biomass(),
	}
	w.Graveyard.Add(c)
	return &w.Graveyard.Corpses[len(w.Graveyard.Corpses)-1]
}
