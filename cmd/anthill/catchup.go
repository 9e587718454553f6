package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/anthill/internal/config"
	"github.com/talgya/anthill/internal/engine"
	"github.com/talgya/anthill/internal/persistence"
)

func newCatchupCommand(root *rootOptions) *cobra.Command {
	var elapsed uint64

	cmd := &cobra.Command{
		Use:   "catchup",
		Short: "Fast-forward the colony through unobserved time",
		Long: `Apply the offline-progress approximation for a span of elapsed
ticks: systems run, ants age, eat, and die, but nothing dramatic
happens while nobody is watching. Capped by max_offline_ticks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if elapsed == 0 {
				return fmt.Errorf("--ticks must be positive")
			}

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
			before := w.Tick

			eng := engine.NewWithTuning(seed, cfg.Tuning)
			if err := eng.Approximate(w, elapsed); err != nil {
				return err
			}

			if _, err := store.SaveSnapshot(w, seed); err != nil {
				return err
			}
			slog.Info("caught up",
				"requested", humanize.Comma(int64(elapsed)),
				"applied", w.Tick-before,
				"tick", w.Tick,
				"ants", w.CountAnts())
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&elapsed, "ticks", "t", 0, "elapsed ticks to approximate")
	return cmd
}
