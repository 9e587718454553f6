package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/anthill/internal/config"
	"github.com/talgya/anthill/internal/engine"
	"github.com/talgya/anthill/internal/persistence"
)

func newStepCommand(root *rootOptions) *cobra.Command {
	var n uint64

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance the colony by N ticks and print what happened",
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

			w, seed, err := store.LoadLatest()
			if err != nil {
				return fmt.Errorf("load colony: %w (run `anthill init` first)", err)
			}

			eng := engine.NewWithTuning(seed, cfg.Tuning)
			out := json.NewEncoder(os.Stdout)
			for i := uint64(0); i < n; i++ {
				evs, err := eng.Step(w)
				if err != nil {
					return err
				}
				if err := store.AppendEvents(evs); err != nil {
					return err
				}
				for _, e := range evs {
					if err := out.Encode(e); err != nil {
						return err
					}
				}
			}

			_, err = store.SaveSnapshot(w, seed)
			return err
		},
	}

	cmd.Flags().Uint64VarP(&n, "ticks", "n", 1, "ticks to advance")
	return cmd
}
