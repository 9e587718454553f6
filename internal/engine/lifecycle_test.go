package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
	"github.com/talgya/anthill/internal/world"
)

func TestHungryEntityEatsAtThreshold(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("fungus", 5)
	w.Entities = append(w.Entities, &colony.Entity{
		ID:         "a1",
		Kind:       colony.KindAnt,
		Role:       colony.RoleWorker,
		Tile:       "origin",
		Hunger:     60,
		HungerRate: 0.3,
		MaxAge:     7200,
		Food:       "fungus",
	})

	// 33 ticks of decay leaves hunger just above the threshold.
	for i := 0; i < 33; i++ {
		evs, err := e.Step(w)
		require.NoError(t, err)
		assert.False(t, evs.Has(events.KindEntityAte))
	}
	assert.InDelta(t, 50.1, w.Entities[0].Hunger, 1e-9)
	assert.Equal(t, 5.0, w.Resources.Get("fungus"))

	// Tick 34 dips under 50: one unit eaten, hunger restored by 30.
	evs, err := e.Step(w)
	require.NoError(t, err)
	ate := evs.OfKind(events.KindEntityAte)
	require.Len(t, ate, 1)
	assert.InDelta(t, 79.8, ate[0].Payload.(events.EntityAte).HungerAfter, 1e-9)
	assert.InDelta(t, 79.8, w.Entities[0].Hunger, 1e-9)
	assert.Equal(t, 4.0, w.Resources.Get("fungus"))
}

func TestOldAgeDeath(t *testing.T) {
	e := New(1)
	w := testWorld()
	ant := colony.NewWorker("elder", "origin")
	ant.Age = 7199
	w.Entities = append(w.Entities, ant)

	evs, err := e.Step(w)
	require.NoError(t, err)

	died := evs.OfKind(events.KindEntityDied)
	require.Len(t, died, 1)
	p := died[0].Payload.(events.EntityDied)
	assert.Equal(t, colony.CauseOldAge, p.Cause)
	assert.Greater(t, p.Biomass, 0.0)

	assert.Empty(t, w.Entities)
	require.Len(t, w.Graveyard.Corpses, 1)
	assert.Equal(t, colony.EntityID("elder"), w.Graveyard.Corpses[0].EntityID)
	assert.Equal(t, 10.0, w.Graveyard.Corpses[0].Biomass, "a full lifespan is worth full biomass")
}

func TestStarvationTakesPrecedence(t *testing.T) {
	e := New(1)
	w := testWorld()
	ant := colony.NewWorker("starving", "origin")
	ant.Age = 7199
	ant.Hunger = 0.05
	w.Entities = append(w.Entities, ant)

	evs, err := e.Step(w)
	require.NoError(t, err)
	died := evs.OfKind(events.KindEntityDied)
	require.Len(t, died, 1)
	assert.Equal(t, colony.CauseStarvation, died[0].Payload.(events.EntityDied).Cause)
}

func TestWandererDepartsWithGift(t *testing.T) {
	e := New(1)
	w := testWorld()
	v := colony.NewWanderer("v_1", "origin")
	v.Age = v.MaxAge - 1
	w.Entities = append(w.Entities, v)

	evs, err := e.Step(w)
	require.NoError(t, err)

	departed := evs.OfKind(events.KindVisitorDeparted)
	require.Len(t, departed, 1)
	assert.Equal(t, colony.VisitorWanderer, departed[0].Payload.(events.VisitorDeparted).VisitorType)

	// Visitors never become corpses; the gift lands on the ledger.
	assert.Empty(t, w.Graveyard.Corpses)
	assert.Equal(t, 1.0, w.Resources.Get("strange_matter"))
}

func TestHungryVisitorTransformsInfluence(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("influence", 10)
	v := colony.NewHungry("v_h", "origin")
	v.Hunger = 40
	w.Entities = append(w.Entities, v)

	evs, err := e.Step(w)
	require.NoError(t, err)

	tr := evs.OfKind(events.KindInfluenceTransformed)
	require.Len(t, tr, 1)
	p := tr[0].Payload.(events.InfluenceTransformed)
	assert.InDelta(t, 0.1, p.InfluenceConsumed, 1e-9)
	assert.InDelta(t, 0.05, p.StrangeMatterProduced, 1e-9)
	assert.InDelta(t, 9.9, w.Resources.Get("influence"), 1e-9)
	assert.InDelta(t, 0.05, w.Resources.Get("strange_matter"), 1e-9)
	// A sip restores 20 hunger, minus this tick's decay.
	assert.InDelta(t, 59.5, v.Hunger, 1e-9)
}

func TestObserverGeneratesInsight(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("crystals", 10)
	w.Entities = append(w.Entities, colony.NewObserver("v_o", "origin"))

	evs, err := e.Step(w)
	require.NoError(t, err)
	gen := evs.OfKind(events.KindPassiveGeneration)
	require.Len(t, gen, 1)
	assert.Equal(t, "insight", gen[0].Payload.(events.PassiveGeneration).Resource)
	assert.InDelta(t, 0.001, w.Resources.Get("insight"), 1e-9)
}

func TestUndertakerProcessingAndConservation(t *testing.T) {
	e := New(1)
	w := testWorld()
	w.Resources.Set("fungus", 100)
	w.Entities = append(w.Entities, colony.NewUndertaker("u1", "origin"))
	w.Graveyard.Add(colony.Corpse{EntityID: "d1", Biomass: 7.5, Cause: colony.CauseStarvation})
	w.Graveyard.Add(colony.Corpse{EntityID: "d2", Biomass: 5.0, Cause: colony.CauseOldAge})

	var processed []events.Event
	for i := 0; i < 260; i++ {
		evs, err := e.Step(w)
		require.NoError(t, err)
		processed = append(processed, evs.OfKind(events.KindCorpseProcessed)...)
	}

	require.Len(t, processed, 2)
	assert.Equal(t, colony.EntityID("d1"), processed[0].Payload.(events.CorpseProcessed).EntityID)
	assert.InDelta(t, 7.5, processed[0].Payload.(events.CorpseProcessed).Nutrients, 1e-9)

	// Conservation: biomass in equals nutrients out plus pending.
	assert.Empty(t, w.Graveyard.Corpses)
	assert.InDelta(t, 12.5, w.Graveyard.BiomassRecovered, 1e-9)
	assert.InDelta(t, 12.5, w.Resources.Get("nutrients"), 1e-9)
	assert.Equal(t, uint64(2), w.Graveyard.TotalProcessed)
}

func TestUndertakerContaminatesCompost(t *testing.T) {
	e := New(1)
	w := state.New(world.Generate(world.DefaultGenConfig()))
	w.Resources.Set("fungus", 100)
	w.Entities = append(w.Entities, colony.NewUndertaker("u1", "compost"))
	w.Graveyard.Add(colony.Corpse{EntityID: "d1", Biomass: 6})

	done := false
	for i := 0; i < 125 && !done; i++ {
		evs, err := e.Step(w)
		require.NoError(t, err)
		done = evs.Has(events.KindCorpseProcessed)
	}
	require.True(t, done)
	assert.InDelta(t, 0.01, w.Map.Get("compost").Contamination, 1e-9)
}

func TestDyingUndertakerReleasesCorpse(t *testing.T) {
	e := New(1)
	w := testWorld()
	u := colony.NewUndertaker("u1", "origin")
	u.Age = 55
	u.MaxAge = 60
	w.Entities = append(w.Entities, u)
	w.Graveyard.Add(colony.Corpse{EntityID: "d1", Biomass: 6})

	for i := 0; i < 5; i++ {
		_, err := e.Step(w)
		require.NoError(t, err)
	}

	// The undertaker died mid-processing; its corpse joins the queue and the
	// claimed one returns to the pending pool.
	require.Len(t, w.Graveyard.Corpses, 2)
	assert.Empty(t, w.Graveyard.Corpses[0].AssignedTo)
	assert.Zero(t, w.Graveyard.Corpses[0].ProcessingTicks)
	assert.Equal(t, colony.EntityID("u1"), w.Graveyard.Corpses[1].EntityID)
}

func TestBlightSuppressesProduction(t *testing.T) {
	e := New(7)
	w := testWorld()
	sys := state.NewGenerator("Dirt Pile", map[string]float64{"dirt": 1})
	sys.Tile = "origin"
	w.Systems["dirt_pile"] = sys
	w.Map.Get("origin").Contamination = 0.5

	struck := false
	var duration uint64
	for i := 0; i < 200 && !struck; i++ {
		evs, err := e.Step(w)
		require.NoError(t, err)
		if evs.Has(events.KindBlightStruck) {
			struck = true
			duration = evs.OfKind(events.KindBlightStruck)[0].Payload.(events.BlightStruck).DurationTicks
		}
	}
	require.True(t, struck, "0.5 per-tick chance must strike within 200 ticks")
	assert.Equal(t, uint64(300), duration)

	tile := w.Map.Get("origin")
	assert.True(t, tile.Blighted)
	assert.Positive(t, tile.BlightTicksRemaining)

	// Generation contributes nothing while blighted.
	before := w.Resources.Get("dirt")
	for i := 0; i < 10; i++ {
		_, err := e.Step(w)
		require.NoError(t, err)
	}
	assert.Equal(t, before, w.Resources.Get("dirt"))

	// The blight runs its course, clearing contamination with it.
	cleared := false
	for i := 0; i < 301 && !cleared; i++ {
		evs, err := e.Step(w)
		require.NoError(t, err)
		cleared = evs.Has(events.KindBlightCleared)
	}
	require.True(t, cleared)
	assert.False(t, tile.Blighted)
	assert.Zero(t, tile.Contamination)

	_, err := e.Step(w)
	require.NoError(t, err)
	assert.Greater(t, w.Resources.Get("dirt"), before)
}

func TestBlightKillsEntitiesOnTile(t *testing.T) {
	e := New(7)
	w := testWorld()
	w.Map.Tiles["elsewhere"] = &world.Tile{Name: "Elsewhere", Type: world.TileEmpty}
	w.Map.Get("origin").Contamination = 1
	w.Entities = append(w.Entities,
		colony.NewWorker("doomed", "origin"),
		colony.NewWorker("safe", "elsewhere"),
	)

	evs, err := e.Step(w)
	require.NoError(t, err)

	require.True(t, evs.Has(events.KindBlightStruck))
	kills := evs.OfKind(events.KindBlightKill)
	require.Len(t, kills, 1)
	assert.Equal(t, colony.EntityID("doomed"), kills[0].Payload.(events.BlightKill).EntityID)

	require.Len(t, w.Entities, 1)
	assert.Equal(t, colony.EntityID("safe"), w.Entities[0].ID)
	require.Len(t, w.Graveyard.Corpses, 1)
	assert.Equal(t, colony.CauseBlight, w.Graveyard.Corpses[0].Cause)
}
