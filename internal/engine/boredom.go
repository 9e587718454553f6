package engine

import (
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// Phase 10: Boredom. A staleness metric over the meta block only: a tick
// where nothing happened and nothing is pending is boring; any activity
// works it back down. Sustained boredom costs sanity.
func (e *Engine) phaseBoredom(w *state.World, evs *events.Stream) {
	quiet := len(*evs) == 0 && !w.Queues.HasActions()
	if quiet {
		w.Meta.Boredom++
	} else if w.Meta.Boredom > 0 {
		w.Meta.Boredom--
	}

	if w.Meta.Boredom < e.tuning.BoredomThreshold {
		return
	}
	evs.Push(w.Tick, events.BoredomHigh{Level: w.Meta.Boredom})
	w.Meta.Boredom = 0

	drain := e.tuning.BoredomSanityDrain
	if drain > w.Meta.Sanity {
		drain = w.Meta.Sanity
	}
	if drain == 0 {
		return
	}
	w.Meta.Sanity -= drain
	evs.Push(w.Tick, events.SanityChanged{
		Delta:    -drain,
		NewValue: w.Meta.Sanity,
		Reason:   "boredom",
	})
}
