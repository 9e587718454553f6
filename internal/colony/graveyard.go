package colony

// Corpse is a dead entity's residue awaiting undertaker processing.
type Corpse struct {
	EntityID   EntityID   `json:"entity_id"`
	EntityKind Kind       `json:"entity_type"`
	DeathTick  uint64     `json:"death_tick"`
	Cause      DeathCause `json:"cause"`
	Tile       string     `json:"tile"`
	Biomass    float64    `json:"biomass"`

	// Set while an undertaker is working this corpse.
	AssignedTo      EntityID `json:"assigned_to,omitempty"`
	ProcessingTicks uint64   `json:"processing_ticks,omitempty"`
}

// Graveyard holds corpses awaiting processing and the running totals of what
// has already been returned to the colony. Biomass entering here equals
// nutrients recovered plus biomass still pending — the conservation law the
// undertakers uphold.
type Graveyard struct {
	Corpses          []Corpse `json:"corpses"`
	TotalProcessed   uint64   `json:"total_processed"`
	BiomassRecovered float64  `json:"biomass_recovered"`
}

// Add registers a new corpse.
func (g *Graveyard) Add(c Corpse) {
	g.Corpses = append(g.Corpses, c)
}

// HasPending reports whether any corpse awaits processing.
func (g *Graveyard) HasPending() bool {
	return len(g.Corpses) > 0
}

// PendingBiomass is the biomass of all corpses not yet fully processed,
// including those currently assigned to an undertaker.
func (g *Graveyard) PendingBiomass() float64 {
	total := 0.0
	for i := range g.Corpses {
		total += g.Corpses[i].Biomass
	}
	return total
}

// AssignedTo returns the index of the corpse the given undertaker is working,
// or -1 if it has none.
func (g *Graveyard) AssignedTo(id EntityID) int {
	for i := range g.Corpses {
		if g.Corpses[i].AssignedTo == id {
			return i
		}
	}
	return -1
}

// NextUnassigned returns the index of the oldest unassigned corpse, or -1.
func (g *Graveyard) NextUnassigned() int {
	for i := range g.Corpses {
		if g.Corpses[i].AssignedTo == "" {
			return i
		}
	}
	return -1
}

// Finish removes the corpse at index i, recording its biomass as recovered.
// Returns the removed corpse.
func (g *Graveyard) Finish(i int) Corpse {
	c := g.Corpses[i]
	g.Corpses = append(g.Corpses[:i], g.Corpses[i+1:]...)
	g.TotalProcessed++
	g.BiomassRecovered += c.Biomass
	return c
}

// Release unassigns every corpse held by the given undertaker. Called when an
// undertaker dies mid-processing so the corpse returns to the pending pool.
func (g *Graveyard) Release(id EntityID) {
	for i := range g.Corpses {
		if g.Corpses[i].AssignedTo == id {
			g.Corpses[i].AssignedTo = ""
			g.Corpses[i].ProcessingTicks = 0
		}
	}
}
