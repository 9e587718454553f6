// Package world provides the colony map: named tiles, their connections, and
// deterministic map generation.
package world

// TileType classifies what a tile is for.
type TileType string

const (
	TileEmpty      TileType = "empty"
	TileCompost    TileType = "compost"
	TileExtraction TileType = "extraction"
	TileProduction TileType = "production"
	TileResource   TileType = "resource"
	TileSpecial    TileType = "special"
	TileAesthetic  TileType = "aesthetic"
	TileAntenna    TileType = "antenna"
)

// Tile is a named location. Tiles never move; contamination and blight are
// mutated only by the blight phase of the engine.
type Tile struct {
	Name string   `json:"name"`
	Type TileType `json:"type"`
	X    int      `json:"x"`
	Y    int      `json:"y"`

	// Contamination in [0, 1]; doubles as the per-tick blight probability.
	Contamination        float64 `json:"contamination"`
	Blighted             bool    `json:"blighted"`
	BlightTicksRemaining uint64  `json:"blight_ticks_remaining"`

	Resource    string `json:"resource,omitempty"`
	Description string `json:"description,omitempty"`
}

// AddContamination raises contamination, capped at 1.
func (t *Tile) AddContamination(amount float64) {
	t.Contamination += amount
	if t.Contamination > 1 {
		t.Contamination = 1
	}
}

// StartBlight marks the tile blighted for the given duration.
func (t *Tile) StartBlight(durationTicks uint64) {
	t.Blighted = true
	t.BlightTicksRemaining = durationTicks
}

// TickBlight advances an active blight by one tick. Returns true on the tick
// the blight clears; clearing also resets contamination.
func (t *Tile) TickBlight() bool {
	if !t.Blighted {
		return false
	}
	if t.BlightTicksRemaining <= 1 {
		t.Blighted = false
		t.BlightTicksRemaining = 0
		t.Contamination = 0
		return true
	}
	t.BlightTicksRemaining--
	return false
}
