package state

// SystemType classifies a production system.
type SystemType string

const (
	SystemGenerator SystemType = "generator"
	SystemConverter SystemType = "converter"
	SystemSpawner   SystemType = "spawner"
	SystemCrafting  SystemType = "crafting"
	SystemAntenna   SystemType = "antenna"
)

// System is a declarative production definition: per-tick generation and
// consumption rate maps. The engine only reads the rates; only design
// decisions change them. Stalled is the engine's observability flag for a
// system whose consumption could not be fully paid.
type System struct {
	Name        string             `json:"name"`
	Type        SystemType         `json:"type"`
	Generates   map[string]float64 `json:"generates,omitempty"`
	Consumes    map[string]float64 `json:"consumes,omitempty"`
	Tile        string             `json:"tile,omitempty"`
	Description string             `json:"description,omitempty"`
	Stalled     bool               `json:"stalled,omitempty"`
}

// NewGenerator creates a system that only produces.
func NewGenerator(name string, generates map[string]float64) *System {
	return &System{Name: name, Type: SystemGenerator, Generates: generates}
}

// NewConverter creates a system that consumes to produce.
func NewConverter(name string, consumes, generates map[string]float64) *System {
	return &System{Name: name, Type: SystemConverter, Consumes: consumes, Generates: generates}
}

// CanRun reports whether the ledger can fully pay this system's consumption.
func (s *System) CanRun(res *Resources) bool {
	if len(s.Consumes) == 0 {
		return true
	}
	return res.CanConsumeAll(s.Consumes)
}
