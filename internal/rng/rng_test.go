package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(12345)
	b := New(54321)

	var va, vb []float64
	for i := 0; i < 10; i++ {
		va = append(va, a.Float64())
		vb = append(vb, b.Float64())
	}
	assert.NotEqual(t, va, vb)
}

func TestForTick(t *testing.T) {
	a := ForTick(100, 1000)
	b := ForTick(100, 1000)
	c := ForTick(100, 1001)

	assert.Equal(t, a.BaseSeed(), b.BaseSeed())
	assert.NotEqual(t, a.BaseSeed(), c.BaseSeed())
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestReseedResetsStream(t *testing.T) {
	s := New(7)
	first := s.Float64()
	s.Float64()
	s.Seed(7)
	assert.Equal(t, first, s.Float64())
	assert.Equal(t, uint64(1), s.Draws())
}

func TestEntityIDs(t *testing.T) {
	s := New(42)
	id1 := s.EntityID()
	id2 := s.EntityID()
	require.Len(t, id1, 8)
	require.Len(t, id2, 8)
	assert.NotEqual(t, id1, id2)

	vid := s.VisitorID()
	require.Len(t, vid, 8) // "v_" + 6 hex chars
	assert.Equal(t, "v_", vid[:2])
}

func TestChanceRatio(t *testing.T) {
	s := New(42)
	trials := 10000
	hits := 0
	for i := 0; i < trials; i++ {
		if s.Chance(0.3) {
			hits++
		}
	}
	ratio := float64(hits) / float64(trials)
	assert.Greater(t, ratio, 0.25)
	assert.Less(t, ratio, 0.35)
}

func TestChanceClamped(t *testing.T) {
	s := New(1)
	assert.False(t, s.Chance(-0.5))
	assert.True(t, s.Chance(1.5))
}

func TestRangeInclusive(t *testing.T) {
	s := New(9)
	for i := 0; i < 1000; i++ {
		v := s.Range(3, 5)
		assert.GreaterOrEqual(t, v, uint64(3))
		assert.LessOrEqual(t, v, uint64(5))
	}
	assert.Equal(t, uint64(4), s.Range(4, 4))
}
