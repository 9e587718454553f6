package state

import "encoding/json"

// Action is an in-flight player/caller action counting down to completion.
type Action struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"`
	Name           string         `json:"name,omitempty"`
	TicksRemaining uint64         `json:"ticks_remaining"`
	Effects        *ActionEffects `json:"effects,omitempty"`
}

// ActionEffects is what an action applies when it completes.
type ActionEffects struct {
	Resources map[string]float64 `json:"resources,omitempty"`
}

// Queues holds pending actions and the pending-event queue the plugin layer
// drains. The engine decrements actions; it never reads the event queue's
// contents, only whether it is empty.
type Queues struct {
	Actions []Action          `json:"actions"`
	Events  []json.RawMessage `json:"events"`
}

// Enqueue adds an action to the queue.
func (q *Queues) Enqueue(a Action) {
	q.Actions = append(q.Actions, a)
}

// HasActions reports whether any action is still in flight.
func (q *Queues) HasActions() bool {
	return len(q.Actions) > 0
}
