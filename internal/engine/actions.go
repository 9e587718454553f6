package engine

import (
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// Phase 1: Action Queue. In-flight actions count down; on expiry their
// effects land on the ledger and a completion event fires.
func (e *Engine) phaseActions(w *state.World, evs *events.Stream) {
	if len(w.Queues.Actions) == 0 {
		return
	}

	remaining := w.Queues.Actions[:0]
	for _, a := range w.Queues.Actions {
		if a.TicksRemaining > 1 {
			a.TicksRemaining--
			remaining = append(remaining, a)
			continue
		}
		if a.Effects != nil && len(a.Effects.Resources) > 0 {
			w.Resources.AddAll(a.Effects.Resources)
		}
		evs.Push(w.Tick, events.ActionComplete{ActionID: a.ID, ActionType: a.Type})
	}
	w.Queues.Actions = remaining
}
