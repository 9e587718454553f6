// Colony map generation using simplex noise.
// The layout is a pure function of the seed: the core tiles are fixed and the
// outlying resource tiles are derived from noise sampled at fixed angles.
package world

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Seed          int64 // Noise seed; the same seed always yields the same map.
	OutlyingTiles int   // Resource tiles placed around the core ring.
}

// DefaultGenConfig returns the standard starting colony layout.
func DefaultGenConfig() GenConfig {
	return GenConfig{Seed: 1, OutlyingTiles: 6}
}

// outlyingResources are the deposits noise can place on outlying tiles.
var outlyingResources = []string{"dirt", "crystals", "fungus"}

// Generate creates the colony map: origin, compost heap, receiver antenna,
// and a ring of outlying resource tiles shaped by noise.
func Generate(cfg GenConfig) *Map {
	m := NewMap()

	m.Tiles["compost"] = &Tile{
		Name:        "The Compost Heap",
		Type:        TileCompost,
		X:           -1,
		Y:           1,
		Description: "Where endings become beginnings.",
	}
	m.Tiles["receiver"] = &Tile{
		Name:        "The Receiver",
		Type:        TileAntenna,
		X:           1,
		Y:           -1,
		Description: "An antenna pointed at the Outside.",
	}
	m.Connect("origin", "compost")
	m.Connect("origin", "receiver")

	depositNoise := opensimplex.NewNormalized(cfg.Seed)
	richnessNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	for i := 0; i < cfg.OutlyingTiles; i++ {
		// Fixed angles around the core so placement order never varies.
		angle := 2 * math.Pi * float64(i) / float64(cfg.OutlyingTiles)
		radius := 2.0
		x := radius * math.Cos(angle)
		y := radius * math.Sin(angle)

		deposit := depositNoise.Eval2(x*0.7, y*0.7)
		richness := richnessNoise.Eval2(x*0.4, y*0.4)

		idx := int(deposit * float64(len(outlyingResources)))
		if idx >= len(outlyingResources) {
			idx = len(outlyingResources) - 1
		}
		resource := outlyingResources[idx]

		id := fmt.Sprintf("outlying_%d", i)
		m.Tiles[id] = &Tile{
			Name:        fmt.Sprintf("Outlying Dirt %d", i),
			Type:        TileResource,
			X:           int(math.Round(x)),
			Y:           int(math.Round(y)),
			Resource:    resource,
			Description: depositDescription(resource, richness),
		}
		m.Connect("origin", id)
	}

	return m
}

func depositDescription(resource string, richness float64) string {
	if richness > 0.6 {
		return fmt.Sprintf("A rich vein of %s.", resource)
	}
	return fmt.Sprintf("Traces of %s.", resource)
}
