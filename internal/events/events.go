// Package events defines the typed, ordered record of everything a tick
// changed. The engine is the only producer; it never reads events back. The
// kind set is closed so consumers can switch exhaustively.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/anthill/internal/colony"
)

// Kind tags an event payload.
type Kind string

const (
	KindActionComplete       Kind = "action_complete"
	KindSystemProduced       Kind = "system_produced"
	KindSystemStalled        Kind = "system_stalled"
	KindEntityAte            Kind = "entity_ate"
	KindEntityDied           Kind = "entity_died"
	KindCorpseProcessed      Kind = "corpse_processed"
	KindBlightStruck         Kind = "blight_struck"
	KindBlightCleared        Kind = "blight_cleared"
	KindBlightKill           Kind = "blight_kill"
	KindAntsSpawned          Kind = "ants_spawned"
	KindEmergencySpawn       Kind = "emergency_spawn"
	KindVisitorArrived       Kind = "visitor_arrived"
	KindVisitorDeparted      Kind = "visitor_departed"
	KindInfluenceSpent       Kind = "influence_spent"
	KindSummonFailed         Kind = "summon_failed"
	KindReceiverSilent       Kind = "receiver_silent"
	KindReceiverRestored     Kind = "receiver_restored"
	KindPassiveGeneration    Kind = "passive_generation"
	KindInfluenceTransformed Kind = "influence_transformed"
	KindThresholdCrossed     Kind = "threshold_crossed"
	KindBoredomHigh          Kind = "boredom_high"
	KindSanityChanged        Kind = "sanity_changed"
)

// Event is one immutable record: the tick it occurred on, its kind, and a
// kind-specific payload. Write-once; never mutated after emission.
type Event struct {
	Tick    uint64  `json:"tick"`
	Kind    Kind    `json:"type"`
	Payload Payload `json:"payload,omitempty"`
}

// Payload is implemented by every event payload struct.
type Payload interface {
	eventKind() Kind
}

// Stream is the ordered events of one tick, in phase order.
type Stream []Event

// Push appends an event to the stream.
func (s *Stream) Push(tick uint64, p Payload) {
	*s = append(*s, Event{Tick: tick, Kind: p.eventKind(), Payload: p})
}

// Has reports whether any event of the given kind is present.
func (s Stream) Has(kind Kind) bool {
	for _, e := range s {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// OfKind returns all events of the given kind, preserving order.
func (s Stream) OfKind(kind Kind) []Event {
	var out []Event
	for _, e := range s {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Payloads.

// ActionComplete reports a queued action finishing and applying its effects.
type ActionComplete struct {
	ActionID   string `json:"action_id"`
	ActionType string `json:"action_type"`
}

// SystemProduced reports a production system's resource movement this tick.
type SystemProduced struct {
	SystemID string             `json:"system_id"`
	Produced map[string]float64 `json:"produced,omitempty"`
	Consumed map[string]float64 `json:"consumed,omitempty"`
}

// SystemStalled reports a system that could not pay its consumption.
type SystemStalled struct {
	SystemID string             `json:"system_id"`
	Missing  map[string]float64 `json:"missing,omitempty"`
}

// EntityAte reports an entity feeding from the ledger.
type EntityAte struct {
	EntityID    colony.EntityID `json:"entity_id"`
	Food        string          `json:"food"`
	HungerAfter float64         `json:"hunger_after"`
}

// EntityDied reports an entity's death and graveyard entry.
type EntityDied struct {
	EntityID   colony.EntityID   `json:"entity_id"`
	EntityKind colony.Kind       `json:"entity_type"`
	Cause      colony.DeathCause `json:"cause"`
	Tile       string            `json:"tile"`
	Biomass    float64           `json:"biomass"`
}

// CorpseProcessed reports an undertaker finishing a corpse.
type CorpseProcessed struct {
	UndertakerID   colony.EntityID `json:"undertaker_id"`
	EntityID       colony.EntityID `json:"entity_id"`
	Nutrients      float64         `json:"nutrients"`
	TotalProcessed uint64          `json:"total_processed"`
	Contamination  float64         `json:"contamination"`
}

// BlightStruck reports blight taking hold of a tile.
type BlightStruck struct {
	Tile          string  `json:"tile"`
	Contamination float64 `json:"contamination"`
	DurationTicks uint64  `json:"duration_ticks"`
}

// BlightCleared reports a blight ending.
type BlightCleared struct {
	Tile string `json:"tile"`
}

// BlightKill reports an entity killed by blight onset.
type BlightKill struct {
	EntityID colony.EntityID `json:"entity_id"`
	Tile     string          `json:"tile"`
}

// AntsSpawned reports the queen producing a worker/undertaker pair.
type AntsSpawned struct {
	WorkerID          colony.EntityID `json:"worker_id"`
	UndertakerID      colony.EntityID `json:"undertaker_id"`
	NutrientsConsumed float64         `json:"nutrients_consumed"`
	FungusConsumed    float64         `json:"fungus_consumed"`
}

// EmergencySpawn reports a spawn forced by an empty colony.
type EmergencySpawn struct {
	WorkerID     colony.EntityID `json:"worker_id"`
	UndertakerID colony.EntityID `json:"undertaker_id"`
}

// VisitorArrived reports a successful summon.
type VisitorArrived struct {
	VisitorID   colony.EntityID    `json:"visitor_id"`
	VisitorType colony.VisitorType `json:"visitor_type"`
	Name        string             `json:"name"`
}

// VisitorDeparted reports a visitor leaving, possibly with a gift.
type VisitorDeparted struct {
	VisitorID   colony.EntityID    `json:"visitor_id"`
	VisitorType colony.VisitorType `json:"visitor_type"`
	Name        string             `json:"name"`
	Gift        map[string]float64 `json:"gift,omitempty"`
}

// InfluenceSpent reports a summon attempt's cost and outcome.
type InfluenceSpent struct {
	Amount  float64 `json:"amount"`
	Success bool    `json:"success"`
}

// SummonFailed reports a paid summon roll that nothing answered.
type SummonFailed struct{}

// ReceiverSilent reports the receiver failing for lack of maintenance.
type ReceiverSilent struct{}

// ReceiverRestored reports the receiver coming back online.
type ReceiverRestored struct{}

// PassiveGeneration reports a visitor's per-tick resource trickle.
type PassiveGeneration struct {
	EntityID colony.EntityID `json:"entity_id"`
	Resource string          `json:"resource"`
	Amount   float64         `json:"amount"`
}

// InfluenceTransformed reports a hungry visitor converting influence.
type InfluenceTransformed struct {
	VisitorID             colony.EntityID `json:"visitor_id"`
	InfluenceConsumed     float64         `json:"influence_consumed"`
	StrangeMatterProduced float64         `json:"strange_matter_produced"`
}

// ThresholdCrossed reports a resource passing a milestone for the first time.
type ThresholdCrossed struct {
	Resource  string  `json:"resource"`
	Threshold float64 `json:"threshold"`
	Current   float64 `json:"current"`
}

// BoredomHigh reports the staleness metric hitting its limit.
type BoredomHigh struct {
	Level uint64 `json:"level"`
}

// SanityChanged reports a sanity adjustment.
type SanityChanged struct {
	Delta    float64 `json:"delta"`
	NewValue float64 `json:"new_value"`
	Reason   string  `json:"reason"`
}

func (ActionComplete) eventKind() Kind       { return KindActionComplete }
func (SystemProduced) eventKind() Kind       { return KindSystemProduced }
func (SystemStalled) eventKind() Kind        { return KindSystemStalled }
func (EntityAte) eventKind() Kind            { return KindEntityAte }
func (EntityDied) eventKind() Kind           { return KindEntityDied }
func (CorpseProcessed) eventKind() Kind      { return KindCorpseProcessed }
func (BlightStruck) eventKind() Kind         { return KindBlightStruck }
func (BlightCleared) eventKind() Kind        { return KindBlightCleared }
func (BlightKill) eventKind() Kind           { return KindBlightKill }
func (AntsSpawned) eventKind() Kind          { return KindAntsSpawned }
func (EmergencySpawn) eventKind() Kind       { return KindEmergencySpawn }
func (VisitorArrived) eventKind() Kind       { return KindVisitorArrived }
func (VisitorDeparted) eventKind() Kind      { return KindVisitorDeparted }
func (InfluenceSpent) eventKind() Kind       { return KindInfluenceSpent }
func (SummonFailed) eventKind() Kind         { return KindSummonFailed }
func (ReceiverSilent) eventKind() Kind       { return KindReceiverSilent }
func (ReceiverRestored) eventKind() Kind     { return KindReceiverRestored }
func (PassiveGeneration) eventKind() Kind    { return KindPassiveGeneration }
func (InfluenceTransformed) eventKind() Kind { return KindInfluenceTransformed }
func (ThresholdCrossed) eventKind() Kind     { return KindThresholdCrossed }
func (BoredomHigh) eventKind() Kind          { return KindBoredomHigh }
func (SanityChanged) eventKind() Kind        { return KindSanityChanged }

// UnmarshalJSON decodes an event by dispatching on its kind tag.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw struct {
		Tick    uint64          `json:"tick"`
		Kind    Kind            `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Tick = raw.Tick
	e.Kind = raw.Kind

	p, err := newPayload(raw.Kind)
	if err != nil {
		return err
	}
	if p == nil {
		e.Payload = nil
		return nil
	}
	if len(raw.Payload) > 0 {
		if err := json.Unmarshal(raw.Payload, p); err != nil {
			return fmt.Errorf("decode %s payload: %w", raw.Kind, err)
		}
	}
	e.Payload = concrete(p)
	return nil
}

// newPayload returns a pointer to a zero payload for the kind.
func newPayload(k Kind) (any, error) {
	switch k {
	case KindActionComplete:
		return &ActionComplete{}, nil
	case KindSystemProduced:
		return &SystemProduced{}, nil
	case KindSystemStalled:
		return &SystemStalled{}, nil
	case KindEntityAte:
		return &EntityAte{}, nil
	case KindEntityDied:
		return &EntityDied{}, nil
	case KindCorpseProcessed:
		return &CorpseProcessed{}, nil
	case KindBlightStruck:
		return &BlightStruck{}, nil
	case KindBlightCleared:
		return &BlightCleared{}, nil
	case KindBlightKill:
		return &BlightKill{}, nil
	case KindAntsSpawned:
		return &AntsSpawned{}, nil
	case KindEmergencySpawn:
		return &EmergencySpawn{}, nil
	case KindVisitorArrived:
		return &VisitorArrived{}, nil
	case KindVisitorDeparted:
		return &VisitorDeparted{}, nil
	case KindInfluenceSpent:
		return &InfluenceSpent{}, nil
	case KindSummonFailed:
		return &SummonFailed{}, nil
	case KindReceiverSilent:
		return &ReceiverSilent{}, nil
	case KindReceiverRestored:
		return &ReceiverRestored{}, nil
	case KindPassiveGeneration:
		return &PassiveGeneration{}, nil
	case KindInfluenceTransformed:
		return &InfluenceTransformed{}, nil
	case KindThresholdCrossed:
		return &ThresholdCrossed{}, nil
	case KindBoredomHigh:
		return &BoredomHigh{}, nil
	case KindSanityChanged:
		return &SanityChanged{}, nil
	}
	return nil, fmt.Errorf("unknown event kind %q", k)
}

// concrete dereferences the decoded pointer back to the value form Push uses,
// so a marshal/unmarshal roundtrip compares equal.
func concrete(p any) Payload {
	switch v := p.(type) {
	case *ActionComplete:
		return *v
	case *SystemProduced:
		return *v
	case *SystemStalled:
		return *v
	case *EntityAte:
		return *v
	case *EntityDied:
		return *v
	case *CorpseProcessed:
		return *v
	case *BlightStruck:
		return *v
	case *BlightCleared:
		return *v
	case *BlightKill:
		return *v
	case *AntsSpawned:
		return *v
	case *EmergencySpawn:
		return *v
	case *VisitorArrived:
		return *v
	case *VisitorDeparted:
		return *v
	case *InfluenceSpent:
		return *v
	case *SummonFailed:
		return *v
	case *ReceiverSilent:
		return *v
	case *ReceiverRestored:
		return *v
	case *PassiveGeneration:
		return *v
	case *InfluenceTransformed:
		return *v
	case *ThresholdCrossed:
		return *v
	case *BoredomHigh:
		return *v
	case *SanityChanged:
		return *v
	}
	return nil
}
