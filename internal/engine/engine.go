// Package engine runs the simulation: a fixed pipeline of ten phases executed
// once per tick, in order, every tick. No phase is skipped or reordered even
// when it has no work, so side-effect ordering is identical across runs.
//
// The engine borrows the world mutably for one call and retains nothing. Its
// only outputs are the mutated state and the tick's event stream. Logical
// shortfalls (empty ledger, failed rolls, stalled systems) are events or
// no-ops, never errors; the only hard failure is structurally invalid input.
package engine

import (
	"fmt"

	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/rng"
	"github.com/talgya/anthill/internal/state"
)

// Engine advances world state one tick at a time. Create one per seed; it is
// stateless apart from the seed and tuning, so the same engine value can step
// any number of worlds.
type Engine struct {
	seed   uint64
	tuning Tuning
}

// New creates an engine with default tuning.
func New(seed uint64) *Engine {
	return NewWithTuning(seed, DefaultTuning())
}

// NewWithTuning creates an engine with explicit tuning.
func NewWithTuning(seed uint64, t Tuning) *Engine {
	return &Engine{seed: seed, tuning: t}
}

// Seed returns the engine's base seed.
func (e *Engine) Seed() uint64 { return e.seed }

// Tuning returns the engine's constants.
func (e *Engine) Tuning() Tuning { return e.tuning }

// Step advances the world by exactly one tick and returns everything that
// happened. The random sub-stream is derived from the new tick index, so
// replaying from a snapshot at tick N reproduces the same draws regardless of
// how the snapshot was reached.
func (e *Engine) Step(w *state.World) (events.Stream, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("step rejected: %w", err)
	}

	w.Tick++
	r := rng.ForTick(e.seed, w.Tick)
	var evs events.Stream

	e.phaseActions(w, &evs)
	e.phaseSystems(w, &evs)
	e.phaseEntities(w, &evs)
	e.phaseUndertakers(w, &evs)
	e.phaseBlight(w, &evs, r)
	e.phaseQueen(w, &evs, r)
	e.phaseReceiver(w, &evs, r)
	e.phaseVisitors(w, &evs)
	e.phaseThresholds(w, &evs)
	e.phaseBoredom(w, &evs)

	return evs, nil
}
