package engine

// Tuning holds every simulation constant in one place. The engine and the
// offline approximator read the same struct, so lifecycle arithmetic cannot
// drift between the two paths.
type Tuning struct {
	// Entity lifecycle.
	MaxHunger            float64 `yaml:"max_hunger"`
	HungerEatThreshold   float64 `yaml:"hunger_eat_threshold"`
	HungerGainFromEating float64 `yaml:"hunger_gain_from_eating"`

	// Queen.
	SpawnIntervalTicks  uint64  `yaml:"spawn_interval_ticks"`
	SpawnCostNutrients  float64 `yaml:"spawn_cost_nutrients"`
	SpawnCostFungus     float64 `yaml:"spawn_cost_fungus"`
	MinResourcesToSpawn float64 `yaml:"min_resources_to_spawn"`
	PopulationCap       int     `yaml:"population_cap"`

	// Undertakers and blight.
	CorpseProcessingTicks  uint64  `yaml:"corpse_processing_ticks"`
	ContaminationPerCorpse float64 `yaml:"contamination_per_corpse"`
	BlightDurationTicks    uint64  `yaml:"blight_duration_ticks"`

	// Receiver.
	SummonCost               float64        `yaml:"summon_cost"`
	SummonCooldownTicks      uint64         `yaml:"summon_cooldown_ticks"`
	SummonChance             float64        `yaml:"summon_chance"`
	ListeningDrain           float64        `yaml:"listening_drain"`
	MaintenanceIntervalTicks uint64         `yaml:"maintenance_interval_ticks"`
	MaintenanceCost          float64        `yaml:"maintenance_cost_strange_matter"`
	VisitorWeights           VisitorWeights `yaml:"visitor_weights"`

	// Hungry visitor metabolism.
	HungryInfluenceConsume     float64 `yaml:"hungry_influence_consume"`
	HungryStrangeMatterProduce float64 `yaml:"hungry_strange_matter_produce"`
	HungryHungerGain           float64 `yaml:"hungry_hunger_gain"`

	// Boredom.
	BoredomThreshold   uint64  `yaml:"boredom_threshold"`
	BoredomSanityDrain float64 `yaml:"boredom_sanity_drain"`

	// Resource milestones, ascending.
	ResourceThresholds []float64 `yaml:"resource_thresholds"`

	// Offline approximation. The hunger discount models reduced activity
	// while unobserved; it is the documented divergence between the
	// approximator and the live engine.
	MaxOfflineTicks       uint64  `yaml:"max_offline_ticks"`
	OfflineHungerDiscount float64 `yaml:"offline_hunger_discount"`
}

// VisitorWeights is the relative draw weight of each visitor subtype.
type VisitorWeights struct {
	Wanderer float64 `yaml:"wanderer"`
	Observer float64 `yaml:"observer"`
	Hungry   float64 `yaml:"hungry"`
}

// DefaultTuning returns the standard constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaxHunger:            100,
		HungerEatThreshold:   50,
		HungerGainFromEating: 30,

		SpawnIntervalTicks:  1800,
		SpawnCostNutrients:  10,
		SpawnCostFungus:     10,
		MinResourcesToSpawn: 15,
		PopulationCap:       50,

		CorpseProcessingTicks:  120,
		ContaminationPerCorpse: 0.01,
		BlightDurationTicks:    300,

		SummonCost:               2,
		SummonCooldownTicks:      600,
		SummonChance:             0.3,
		ListeningDrain:           0.0005,
		MaintenanceIntervalTicks: 3600,
		MaintenanceCost:          1,
		VisitorWeights:           VisitorWeights{Wanderer: 0.45, Observer: 0.35, Hungry: 0.20},

		HungryInfluenceConsume:     0.1,
		HungryStrangeMatterProduce: 0.05,
		HungryHungerGain:           20,

		BoredomThreshold:   60,
		BoredomSanityDrain: 1,

		ResourceThresholds: []float64{10, 25, 50, 100, 250, 500, 1000},

		MaxOfflineTicks:       3600,
		OfflineHungerDiscount: 0.5,
	}
}
