package state

import "encoding/json"

// Goal is a tracked project with optional maintenance scheduling.
type Goal struct {
	Progress       float64 `json:"progress"`
	LastMaintained uint64  `json:"last_maintained,omitempty"`
	IntervalTicks  uint64  `json:"maintenance_interval_ticks,omitempty"`
}

// Meta is the free-form session block: counters and collections the calling
// layer cares about but the phases mostly leave alone. It lives inside the
// world state so nothing is ambient global state.
type Meta struct {
	Boredom uint64  `json:"boredom"`
	Sanity  float64 `json:"sanity"`

	Goals         map[string]Goal `json:"goals,omitempty"`
	RejectedIdeas []string        `json:"rejected_ideas"`
	FiredCards    []string        `json:"fired_cards"`

	// Caller-shaped collections; kept opaque for forward compatibility.
	RecentDecisions []json.RawMessage `json:"recent_decisions"`
	Decor           []json.RawMessage `json:"decor"`
	Jewelry         []json.RawMessage `json:"jewelry"`
	Reflections     []json.RawMessage `json:"reflections"`

	// Receiver maintenance status.
	ReceiverSilent     bool   `json:"receiver_silent"`
	ReceiverFailedTick uint64 `json:"receiver_failed_tick,omitempty"`

	// Cooldown clocks. Stored in state, not the engine, so a reloaded world
	// resumes with its cooldowns intact.
	LastSpawnTick  uint64 `json:"last_spawn_tick,omitempty"`
	LastSummonTick uint64 `json:"last_summon_tick,omitempty"`

	// Last-seen threshold bucket per resource, so a crossed milestone fires
	// exactly once while the resource stays above it.
	ThresholdBuckets map[string]float64 `json:"threshold_buckets,omitempty"`
}

// NewMeta returns a meta block with full sanity.
func NewMeta() Meta {
	return Meta{Sanity: 100.0}
}

// Bucket returns the last-seen threshold bucket for a resource.
func (m *Meta) Bucket(resource string) float64 {
	return m.ThresholdBuckets[resource]
}

// SetBucket records the last-seen threshold bucket for a resource.
func (m *Meta) SetBucket(resource string, bucket float64) {
	if m.ThresholdBuckets == nil {
		m.ThresholdBuckets = make(map[string]float64)
	}
	m.ThresholdBuckets[resource] = bucket
}
