// Package colony provides the entity data model: ants, visitors, and the
// graveyard that receives them.
package colony

// EntityID is a unique identifier for an entity.
type EntityID string

// Kind distinguishes colony members from the things that visit them.
type Kind string

const (
	KindAnt     Kind = "ant"
	KindVisitor Kind = "visitor"
)

// Role is an ant's job in the colony.
type Role string

const (
	RoleWorker     Role = "worker"
	RoleUndertaker Role = "undertaker"
)

// VisitorType classifies what came through the receiver.
type VisitorType string

const (
	VisitorWanderer VisitorType = "wanderer"
	VisitorObserver VisitorType = "observer"
	VisitorHungry   VisitorType = "hungry"
)

// DeathCause records why an entity died.
type DeathCause string

const (
	CauseStarvation DeathCause = "starvation"
	CauseOldAge     DeathCause = "old_age"
	CauseBlight     DeathCause = "blight"
)

// Entity is a living thing in the simulation. The Tile field is a lookup key
// into the map's tile collection, never an owning reference.
type Entity struct {
	ID      EntityID    `json:"id"`
	Kind    Kind        `json:"type"`
	Role    Role        `json:"role,omitempty"`
	Subtype VisitorType `json:"subtype,omitempty"`
	Name    string      `json:"name,omitempty"`
	Tile    string      `json:"tile"`

	Age        uint64  `json:"age"`
	Hunger     float64 `json:"hunger"`
	HungerRate float64 `json:"hunger_rate"`
	MaxAge     uint64  `json:"max_age"`
	Food       string  `json:"food,omitempty"`

	// Visitor behavior.
	FromOutside bool               `json:"from_outside,omitempty"`
	Description string             `json:"description,omitempty"`
	GiftOnDeath map[string]float64 `json:"gift_on_death,omitempty"`
	Generates   map[string]float64 `json:"generates,omitempty"`
	Transforms  bool               `json:"transforms,omitempty"`

	// Ornamentation placed on the entity by the calling layer.
	Adornment string `json:"adornment,omitempty"`
}

// Default lifecycle values for newly spawned ants.
const (
	DefaultHunger     = 100.0
	DefaultHungerRate = 0.1
	DefaultMaxAge     = 7200 // 2 hours at one tick per second
)

// NewWorker creates a worker ant on the given tile.
func NewWorker(id EntityID, tile string) *Entity {
	return &Entity{
		ID:         id,
		Kind:       KindAnt,
		Role:       RoleWorker,
		Tile:       tile,
		Hunger:     DefaultHunger,
		HungerRate: DefaultHungerRate,
		MaxAge:     DefaultMaxAge,
		Food:       "fungus",
	}
}

// NewUndertaker creates an undertaker ant on the given tile.
// Undertakers are hungrier than workers.
func NewUndertaker(id EntityID, tile string) *Entity {
	return &Entity{
		ID:         id,
		Kind:       KindAnt,
		Role:       RoleUndertaker,
		Tile:       tile,
		Hunger:     DefaultHunger,
		HungerRate: 0.15,
		MaxAge:     DefaultMaxAge,
		Food:       "fungus",
	}
}

// NewWanderer creates a wanderer visitor. Passes through, leaves a gift behind.
func NewWanderer(id EntityID, tile string) *Entity {
	return &Entity{
		ID:          id,
		Kind:        KindVisitor,
		Subtype:     VisitorWanderer,
		Name:        "A Wanderer",
		Tile:        tile,
		Hunger:      DefaultHunger,
		HungerRate:  0,
		MaxAge:      1800, // 30 minutes
		FromOutside: true,
		Description: "Passes through. Leaves something behind.",
		GiftOnDeath: map[string]float64{"strange_matter": 1.0},
	}
}

// NewObserver creates an observer visitor. Watches, generates insight.
func NewObserver(id EntityID, tile string) *Entity {
	return &Entity{
		ID:          id,
		Kind:        KindVisitor,
		Subtype:     VisitorObserver,
		Name:        "An Observer",
		Tile:        tile,
		Hunger:      DefaultHunger,
		HungerRate:  0.05,
		MaxAge:      3600, // 1 hour
		Food:        "crystals",
		FromOutside: true,
		Description: "Watches. Generates insight from the watching.",
		Generates:   map[string]float64{"insight": 0.001},
	}
}

// NewHungry creates a hungry visitor. Consumes influence, transforms it.
func NewHungry(id EntityID, tile string) *Entity {
	return &Entity{
		ID:          id,
		Kind:        KindVisitor,
		Subtype:     VisitorHungry,
		Name:        "A Hungry Thing",
		Tile:        tile,
		Hunger:      DefaultHunger,
		HungerRate:  0.5,
		MaxAge:      900, // 15 minutes
		Food:        "influence",
		FromOutside: true,
		Description: "Consumes. Transforms what it consumes.",
		Transforms:  true,
	}
}

// IsAnt reports whether the entity is a colony member rather than a visitor.
func (e *Entity) IsAnt() bool { return e.Kind == KindAnt }

// CauseOfDeath returns the cause if the entity is dead, or "" while it lives.
// Starvation takes precedence over old age when both apply.
func (e *Entity) CauseOfDeath() DeathCause {
	if e.Hunger <= 0 {
		return CauseStarvation
	}
	if e.Age >= e.MaxAge {
		return CauseOldAge
	}
	return ""
}

// Biomass is what the entity's body is worth to the colony once dead:
// a base amount scaled by how much of its lifespan it attained. Always
// positive so every corpse returns something.
func (e *Entity) Biomass() float64 {
	const base = 10.0
	frac := 1.0
	if e.MaxAge > 0 {
		frac = float64(e.Age) / float64(e.MaxAge)
		if frac > 1 {
			frac = 1
		}
	}
	return base * (0.5 + 0.5*frac)
}
