package engine

import (
	"fmt"

	"github.com/talgya/anthill/internal/state"
)

// Approximate fast-forwards the world through ticks the engine never ran,
// at reduced fidelity. It reuses the shared lifecycle rules for aging,
// feeding, and death, with hunger decay discounted by OfflineHungerDiscount
// to model reduced activity while unobserved. Ant deaths still land in the
// graveyard with their biomass, so the conservation law holds across offline
// windows.
//
// Deliberately skipped: blight rolls, queen and receiver activity, visitors'
// passive effects, thresholds, boredom, and all events. Low-probability,
// high-narrative moments should only happen while something is watching.
//
// elapsedTicks is capped at MaxOfflineTicks. Divergence from running Step
// the same number of times is bounded by the discounted hunger path:
// resources match exactly for systems that never stall, aging is exact, and
// survival differs only where the discount carries an entity past a
// starvation it would otherwise have met.
func (e *Engine) Approximate(w *state.World, elapsedTicks uint64) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("approximate rejected: %w", err)
	}

	n := elapsedTicks
	if n > e.tuning.MaxOfflineTicks {
		n = e.tuning.MaxOfflineTicks
	}

	for i := uint64(0); i < n; i++ {
		w.Tick++

		for _, id := range w.SortedSystemIDs() {
			sys := w.Systems[id]
			if systemSuppressed(w, sys) || !sys.CanRun(&w.Resources) {
				continue
			}
			runSystem(w, sys)
		}

		survivors := w.Entities[:0]
		for _, ent := range w.Entities {
			ageAndDecay(ent, e.tuning.OfflineHungerDiscount)
			e.tryFeed(ent, &w.Resources)

			cause := ent.CauseOfDeath()
			if cause == "" {
				survivors = append(survivors, ent)
				continue
			}
			settleDeath(w, ent, cause)
		}
		clearTail(w.Entities, len(survivors))
		w.Entities = survivors
	}

	return nil
}
