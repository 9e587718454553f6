package world

import "sort"

// Map holds all tiles by id plus the connections between them.
type Map struct {
	Tiles       map[string]*Tile `json:"tiles"`
	Connections [][2]string      `json:"connections"`
}

// NewMap creates a map containing only the origin tile.
func NewMap() *Map {
	return &Map{
		Tiles: map[string]*Tile{
			"origin": {Name: "The Starting Dirt", Type: TileEmpty},
		},
	}
}

// Get returns the tile with the given id, or nil.
func (m *Map) Get(id string) *Tile {
	return m.Tiles[id]
}

// Has reports whether a tile id exists.
func (m *Map) Has(id string) bool {
	_, ok := m.Tiles[id]
	return ok
}

// SortedIDs returns all tile ids in lexicographic order. Every engine phase
// that walks the map iterates in this order so event ordering and random
// draws are identical across runs.
func (m *Map) SortedIDs() []string {
	ids := make([]string, 0, len(m.Tiles))
	for id := range m.Tiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Connect records a bidirectional connection between two tiles.
func (m *Map) Connect(a, b string) {
	m.Connections = append(m.Connections, [2]string{a, b})
}

// AreConnected reports whether two tiles share a connection.
func (m *Map) AreConnected(a, b string) bool {
	for _, c := range m.Connections {
		if (c[0] == a && c[1] == b) || (c[0] == b && c[1] == a) {
			return true
		}
	}
	return false
}

// Neighbors returns the ids of all tiles connected to the given one.
func (m *Map) Neighbors(id string) []string {
	var out []string
	for _, c := range m.Connections {
		switch id {
		case c[0]:
			out = append(out, c[1])
		case c[1]:
			out = append(out, c[0])
		}
	}
	return out
}
