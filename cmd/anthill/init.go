package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/config"
	"github.com/talgya/anthill/internal/persistence"
	"github.com/talgya/anthill/internal/rng"
	"github.com/talgya/anthill/internal/state"
	"github.com/talgya/anthill/internal/world"
)

func newInitCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a fresh colony and save the first snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.ConfigPath)
			if err != nil {
				return err
			}

			store, err := persistence.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, _, err := store.LoadLatest(); err == nil {
				return fmt.Errorf("database %s already holds a colony", cfg.Database)
			}

			w := newStarterWorld(cfg.Seed)
			id, err := store.SaveSnapshot(w, cfg.Seed)
			if err != nil {
				return err
			}

			slog.Info("colony founded",
				"snapshot", id,
				"seed", cfg.Seed,
				"tiles", len(w.Map.Tiles),
				"ants", w.CountAnts())
			return nil
		},
	}
}

// newStarterWorld builds the founding colony: the generated map, the basic
// production chain, and the first three ants. Entity ids come from the
// seed's tick-zero stream, so two colonies founded on the same seed are
// identical.
func newStarterWorld(seed uint64) *state.World {
	gen := world.DefaultGenConfig()
	gen.Seed = int64(seed)
	w := state.New(world.Generate(gen))

	w.Resources.Set("dirt", 10)
	w.Resources.Set("fungus", 20)
	w.Resources.Set("nutrients", 20)

	w.Systems["dirt_pile"] = state.NewGenerator("The Dirt Pile",
		map[string]float64{"dirt": 0.1})
	w.Systems["fungus_farm"] = state.NewConverter("The Fungus Farm",
		map[string]float64{"dirt": 0.05},
		map[string]float64{"fungus": 0.02})
	w.Systems["queen_chamber"] = &state.System{
		Name:        "The Queen's Chamber",
		Type:        state.SystemSpawner,
		Tile:        "origin",
		Description: "She produces. That is all she does.",
	}
	w.Systems["receiver_dish"] = &state.System{
		Name:        "The Receiver",
		Type:        state.SystemAntenna,
		Tile:        "receiver",
		Generates:   map[string]float64{"influence": 0.001},
		Description: "Listens for the Outside. Sometimes something listens back.",
	}

	r := rng.ForTick(seed, 0)
	w.Entities = append(w.Entities,
		colony.NewWorker(colony.EntityID(r.EntityID()), "origin"),
		colony.NewWorker(colony.EntityID(r.EntityID()), "origin"),
		colony.NewUndertaker(colony.EntityID(r.EntityID()), "origin"),
	)

	w.Meta.Goals = map[string]state.Goal{"receiver_maintenance": {}}
	return w
}
