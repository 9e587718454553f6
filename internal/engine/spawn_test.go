package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/rng"
	"github.com/talgya/anthill/internal/state"
)

func TestQueenCooldownSpawn(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("nutrients", 50)
	w.Resources.Set("fungus", 50)
	w.Entities = append(w.Entities, colony.NewWorker("a1", "origin"))
	w.Tick = 1799

	evs, err := e.Step(w)
	require.NoError(t, err)

	spawned := evs.OfKind(events.KindAntsSpawned)
	require.Len(t, spawned, 1)
	p := spawned[0].Payload.(events.AntsSpawned)
	assert.Equal(t, 10.0, p.NutrientsConsumed)
	assert.Equal(t, 10.0, p.FungusConsumed)

	require.Len(t, w.Entities, 3)
	assert.Equal(t, 1, w.CountAntsByRole(colony.RoleUndertaker))
	assert.InDelta(t, 40.0, w.Resources.Get("nutrients"), 1e-9)
	assert.InDelta(t, 40.0, w.Resources.Get("fungus"), 1e-9)
	assert.Equal(t, uint64(1800), w.Meta.LastSpawnTick)

	// Cooldown just reset: the next tick spawns nothing.
	evs, err = e.Step(w)
	require.NoError(t, err)
	assert.False(t, evs.Has(events.KindAntsSpawned))
}

func TestQueenRespectsPopulationCap(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("nutrients", 500)
	w.Resources.Set("fungus", 500)
	for i := 0; i < 50; i++ {
		id := colony.EntityID(fmt.Sprintf("w%02d", i))
		w.Entities = append(w.Entities, colony.NewWorker(id, "origin"))
	}
	w.Tick = 1799

	evs, err := e.Step(w)
	require.NoError(t, err)
	assert.False(t, evs.Has(events.KindAntsSpawned))
	assert.Len(t, w.Entities, 50)
}

func TestQueenEmergencySpawnBypassesCooldown(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("nutrients", 20)
	w.Resources.Set("fungus", 20)

	evs, err := e.Step(w)
	require.NoError(t, err)

	require.True(t, evs.Has(events.KindEmergencySpawn), "empty colony spawns on tick 1")
	assert.False(t, evs.Has(events.KindAntsSpawned))
	assert.Len(t, w.Entities, 2)
	assert.InDelta(t, 10.0, w.Resources.Get("nutrients"), 1e-9)
}

func TestQueenEmergencyStillNeedsResources(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("nutrients", 5)
	w.Resources.Set("fungus", 20)

	evs, err := e.Step(w)
	require.NoError(t, err)
	assert.False(t, evs.Has(events.KindEmergencySpawn))
	assert.Empty(t, w.Entities)
}

func TestQueenReplacesDeadUndertaker(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("nutrients", 30)
	w.Resources.Set("fungus", 30)
	w.Entities = append(w.Entities, colony.NewWorker("a1", "origin"))
	w.Graveyard.Add(colony.Corpse{EntityID: "d1", Biomass: 6})

	evs, err := e.Step(w)
	require.NoError(t, err)

	require.True(t, evs.Has(events.KindAntsSpawned), "pending corpses with no undertaker force a spawn")
	assert.Equal(t, 1, w.CountAntsByRole(colony.RoleUndertaker))
}

func TestReceiverSummonCostAndCooldown(t *testing.T) {
	e := New(42)
	w := testWorld()
	w.Systems["receiver_dish"] = &state.System{Name: "The Receiver", Type: state.SystemAntenna}
	w.Resources.Set("influence", 10)

	evs, err := e.Step(w)
	require.NoError(t, err)

	spent := evs.OfKind(events.KindInfluenceSpent)
	require.Len(t, spent, 1)
	p := spent[0].Payload.(events.InfluenceSpent)
	assert.Equal(t, 2.0, p.Amount)
	if p.Success {
		assert.True(t, evs.Has(events.KindVisitorArrived))
		require.Len(t, w.Entities, 1)
		assert.False(t, w.Entities[0].IsAnt())
	} else {
		assert.True(t, evs.Has(events.KindSummonFailed))
		assert.Empty(t, w.Entities)
	}
	// Listening drain plus the attempt cost, paid either way.
	assert.InDelta(t, 7.9995, w.Resources.Get("influence"), 1e-9)
	assert.Equal(t, uint64(1), w.Meta.LastSummonTick)

	// Inside the cooldown no further attempt happens, paid or not.
	for i := 0; i < 10; i++ {
		evs, err = e.Step(w)
		require.NoError(t, err)
		assert.False(t, evs.Has(events.KindInfluenceSpent))
	}
}

func TestReceiverMaintenanceSilenceAndRestore(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Systems["receiver_dish"] = &state.System{Name: "The Receiver", Type: state.SystemAntenna}
	w.Resources.Set("influence", 10)
	w.Meta.Goals = map[string]state.Goal{
		"receiver_maintenance": {IntervalTicks: 10},
	}
	w.Tick = 9

	// Maintenance comes due with no strange matter on hand.
	evs, err := e.Step(w)
	require.NoError(t, err)
	require.True(t, evs.Has(events.KindReceiverSilent))
	assert.True(t, w.Meta.ReceiverSilent)
	assert.False(t, evs.Has(events.KindInfluenceSpent), "a silent receiver does not summon")
	assert.Equal(t, 10.0, w.Resources.Get("influence"), "a silent receiver does not listen either")

	// Still silent while broke.
	evs, err = e.Step(w)
	require.NoError(t, err)
	assert.False(t, evs.Has(events.KindReceiverRestored))

	w.Resources.Set("strange_matter", 1)
	evs, err = e.Step(w)
	require.NoError(t, err)
	require.True(t, evs.Has(events.KindReceiverRestored))
	assert.False(t, w.Meta.ReceiverSilent)
	assert.Zero(t, w.Resources.Get("strange_matter"))
	assert.Equal(t, uint64(12), w.Meta.Goals["receiver_maintenance"].LastMaintained)
}

func TestSummonWeightsRoughlyHold(t *testing.T) {
	e := New(1)
	r := rng.New(99)
	counts := map[colony.VisitorType]int{}
	for i := 0; i < 1000; i++ {
		v := e.summonVisitor(r, "origin")
		counts[v.Subtype]++
	}
	assert.InDelta(t, 450, counts[colony.VisitorWanderer], 100)
	assert.InDelta(t, 350, counts[colony.VisitorObserver], 100)
	assert.InDelta(t, 200, counts[colony.VisitorHungry], 100)
}
