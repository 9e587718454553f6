package engine

import (
	"github.com/talgya/anthill/internal/events"
	"github.com/talgya/anthill/internal/state"
)

// Phase 9: Thresholds. Each resource is bucketed by the highest milestone at
// or below its quantity. A rising bucket fires one event per milestone
// passed; a falling bucket follows silently, so a dip and re-cross fires
// again.
func (e *Engine) phaseThresholds(w *state.World, evs *events.Stream) {
	for _, name := range w.Resources.SortedNames() {
		amount := w.Resources.Get(name)
		bucket := e.bucketFor(amount)
		last := w.Meta.Bucket(name)
		if bucket == last {
			continue
		}
		if bucket > last {
			for _, th := range e.tuning.ResourceThresholds {
				if th > last && th <= bucket {
					evs.Push(w.Tick, events.ThresholdCrossed{
						Resource:  name,
						Threshold: th,
						Current:   amount,
					})
				}
			}
		}
		w.Meta.SetBucket(name, bucket)
	}
}

// bucketFor returns the highest milestone at or below amount, 0 if none.
func (e *Engine) bucketFor(amount float64) float64 {
	bucket := 0.0
	for _, th := range e.tuning.ResourceThresholds {
		if amount >= th {
			bucket = th
		}
	}
	return bucket
}
