// Package state provides the world-state root aggregate and its pure data
// components: the resource ledger, production systems, queues, and the meta
// block. No behavior beyond bookkeeping lives here; the engine owns the rules.
package state

import (
	"encoding/json"
	"sort"
)

// Resources is the ledger: an open string-keyed set of quantities. New
// resource kinds appear by being referenced, no schema change needed.
// Quantities never go negative; Add clamps at zero.
type Resources struct {
	amounts map[string]float64
}

// NewResources creates an empty ledger.
func NewResources() Resources {
	return Resources{amounts: make(map[string]float64)}
}

// Get returns the quantity of a resource, 0 if absent.
func (r *Resources) Get(name string) float64 {
	return r.amounts[name]
}

// Set replaces the quantity of a resource. Negative values clamp to zero.
func (r *Resources) Set(name string, amount float64) {
	if r.amounts == nil {
		r.amounts = make(map[string]float64)
	}
	if amount < 0 {
		amount = 0
	}
	r.amounts[name] = amount
}

// Add adjusts a resource by delta, clamping the result at zero.
func (r *Resources) Add(name string, delta float64) {
	r.Set(name, r.Get(name)+delta)
}

// Has reports whether at least this much of a resource is available.
func (r *Resources) Has(name string, amount float64) bool {
	return r.Get(name) >= amount
}

// TryConsume subtracts amount if fully available. Returns false otherwise,
// leaving the ledger untouched.
func (r *Resources) TryConsume(name string, amount float64) bool {
	if !r.Has(name, amount) {
		return false
	}
	r.Set(name, r.Get(name)-amount)
	return true
}

// CanConsumeAll reports whether every requirement can be fully paid.
func (r *Resources) CanConsumeAll(requirements map[string]float64) bool {
	for name, amount := range requirements {
		if !r.Has(name, amount) {
			return false
		}
	}
	return true
}

// AddAll applies every addition in the map.
func (r *Resources) AddAll(additions map[string]float64) {
	for name, amount := range additions {
		r.Add(name, amount)
	}
}

// SortedNames returns all resource names in lexicographic order, for
// deterministic iteration.
func (r *Resources) SortedNames() []string {
	names := make([]string, 0, len(r.amounts))
	for name := range r.amounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct resources ever touched.
func (r *Resources) Len() int { return len(r.amounts) }

// MarshalJSON serializes the ledger as a flat name→quantity object.
func (r Resources) MarshalJSON() ([]byte, error) {
	if r.amounts == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.amounts)
}

// UnmarshalJSON restores the ledger from a flat object.
func (r *Resources) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.amounts)
}
