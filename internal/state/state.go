package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/world"
)

// Structural validation errors. These are the only hard-failure class the
// engine surfaces; everything else is content.
var (
	ErrUnknownTile     = errors.New("unknown tile reference")
	ErrDuplicateEntity = errors.New("duplicate entity id")
	ErrNilMap          = errors.New("world has no map")
)

// World is the root aggregate: everything the simulation knows. It is pure
// data, owned by the caller; the engine borrows it mutably for one step and
// retains nothing afterwards.
type World struct {
	Tick      uint64             `json:"tick"`
	Resources Resources          `json:"resources"`
	Systems   map[string]*System `json:"systems"`
	Entities  []*colony.Entity   `json:"entities"`
	Map       *world.Map         `json:"map"`
	Queues    Queues             `json:"queues"`
	Meta      Meta               `json:"meta"`
	Graveyard colony.Graveyard   `json:"graveyard"`
}

// New creates a fresh world around the given map.
func New(m *world.Map) *World {
	if m == nil {
		m = world.NewMap()
	}
	return &World{
		Resources: NewResources(),
		Systems:   make(map[string]*System),
		Map:       m,
		Meta:      NewMeta(),
	}
}

// FromJSON deserializes a world. Unknown fields are tolerated; referential
// integrity is checked separately by Validate.
func FromJSON(data []byte) (*World, error) {
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode world state: %w", err)
	}
	if w.Systems == nil {
		w.Systems = make(map[string]*System)
	}
	return &w, nil
}

// ToJSON serializes the world with stable field names.
func (w *World) ToJSON() ([]byte, error) {
	return json.Marshal(w)
}

// ToJSONIndent serializes the world for humans.
func (w *World) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

// Validate checks referential integrity: every entity and system that names a
// tile must name one that exists, and entity ids must be unique. Called by the
// engine before any phase runs, so invalid state is rejected whole, never
// partially applied.
func (w *World) Validate() error {
	if w.Map == nil || w.Map.Tiles == nil {
		return ErrNilMap
	}

	seen := make(map[colony.EntityID]bool, len(w.Entities))
	for _, e := range w.Entities {
		if seen[e.ID] {
			return fmt.Errorf("entity %q: %w", e.ID, ErrDuplicateEntity)
		}
		seen[e.ID] = true
		if !w.Map.Has(e.Tile) {
			return fmt.Errorf("entity %q on tile %q: %w", e.ID, e.Tile, ErrUnknownTile)
		}
	}

	for id, sys := range w.Systems {
		if sys.Tile != "" && !w.Map.Has(sys.Tile) {
			return fmt.Errorf("system %q on tile %q: %w", id, sys.Tile, ErrUnknownTile)
		}
	}

	return nil
}

// HasSystem reports whether a system id exists.
func (w *World) HasSystem(id string) bool {
	_, ok := w.Systems[id]
	return ok
}

// SortedSystemIDs returns system ids in lexicographic order for deterministic
// iteration.
func (w *World) SortedSystemIDs() []string {
	ids := make([]string, 0, len(w.Systems))
	for id := range w.Systems {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetEntity returns the entity with the given id, or nil.
func (w *World) GetEntity(id colony.EntityID) *colony.Entity {
	for _, e := range w.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// CountAnts returns the number of living ants, visitors excluded.
func (w *World) CountAnts() int {
	n := 0
	for _, e := range w.Entities {
		if e.IsAnt() {
			n++
		}
	}
	return n
}

// CountAntsByRole returns the number of living ants with the given role.
func (w *World) CountAntsByRole(role colony.Role) int {
	n := 0
	for _, e := range w.Entities {
		if e.IsAnt() && e.Role == role {
			n++
		}
	}
	return n
}

// EntitiesOnTile returns all entities standing on a tile, in slice order.
func (w *World) EntitiesOnTile(tile string) []*colony.Entity {
	var out []*colony.Entity
	for _, e := range w.Entities {
		if e.Tile == tile {
			out = append(out, e)
		}
	}
	return out
}
