package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/anthill/internal/colony"
	"github.com/talgya/anthill/internal/config"
	"github.com/talgya/anthill/internal/engine"
	"github.com/talgya/anthill/internal/persistence"
	"github.com/talgya/anthill/internal/state"
	"github.com/talgya/anthill/internal/viewer"
)

func newRunCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the colony live with the viewer attached",
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

			hub := viewer.NewHub()
			// The loop below is the only writer; status requests read a
			// snapshot taken between ticks through this channel pair.
			statusReq := make(chan struct{})
			statusRes := make(chan viewer.Status)
			srv := &viewer.Server{
				Hub:   hub,
				Store: store,
				Status: func() viewer.Status {
					statusReq <- struct{}{}
					return <-statusRes
				},
			}
			mux := http.NewServeMux()
			srv.Routes(mux)
			go func() {
				slog.Info("viewer listening", "addr", cfg.Listen)
				if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
					slog.Error("viewer server", "error", err)
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			interval := time.Duration(cfg.TickIntervalMS) * time.Millisecond
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			slog.Info("colony running", "tick", w.Tick, "seed", seed, "interval", interval)
			for {
				select {
				case <-ticker.C:
					evs, err := eng.Step(w)
					if err != nil {
						return err
					}
					if err := store.AppendEvents(evs); err != nil {
						slog.Error("journal write failed", "error", err)
					}
					hub.Broadcast(w.Tick, evs)

					if cfg.AutosaveInterval > 0 && w.Tick%cfg.AutosaveInterval == 0 {
						if _, err := store.SaveSnapshot(w, seed); err != nil {
							slog.Error("autosave failed", "error", err)
						}
					}

				case <-statusReq:
					statusRes <- snapshotStatus(w)

				case <-stop:
					slog.Info("shutting down", "tick", w.Tick)
					_, err := store.SaveSnapshot(w, seed)
					return err
				}
			}
		},
	}
}

// snapshotStatus copies what the viewer shows out of the live world.
func snapshotStatus(w *state.World) viewer.Status {
	resources := make(map[string]float64, w.Resources.Len())
	for _, name := range w.Resources.SortedNames() {
		resources[name] = w.Resources.Get(name)
	}

	visitors := 0
	for _, e := range w.Entities {
		if e.Kind == colony.KindVisitor {
			visitors++
		}
	}

	return viewer.Status{
		Tick:      w.Tick,
		Ants:      w.CountAnts(),
		Visitors:  visitors,
		Corpses:   len(w.Graveyard.Corpses),
		Sanity:    w.Meta.Sanity,
		Boredom:   w.Meta.Boredom,
		Resources: resources,
	}
}
