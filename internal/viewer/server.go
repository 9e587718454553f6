package viewer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/anthill/internal/persistence"
)

// Status is a point-in-time summary of the running colony. The sim loop owns
// the world; it hands the viewer read-only copies through the StatusFunc.
type Status struct {
	Tick      uint64             `json:"tick"`
	Ants      int                `json:"ants"`
	Visitors  int                `json:"visitors"`
	Corpses   int                `json:"corpses_pending"`
	Sanity    float64            `json:"sanity"`
	Boredom   uint64             `json:"boredom"`
	Resources map[string]float64 `json:"resources"`
}

// Server is the read-only HTTP surface around a running simulation.
type Server struct {
	Hub    *Hub
	Store  *persistence.Store
	Status func() Status

	started time.Time
}

// Routes registers the viewer endpoints on a mux.
func (s *Server) Routes(mux *http.ServeMux) {
	s.started = time.Now()
	mux.HandleFunc("/ws", s.Hub.HandleWS)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/events", s.handleEvents)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.Status()

	resources := make(map[string]string, len(st.Resources))
	for name, amount := range st.Resources {
		resources[name] = humanize.CommafWithDigits(amount, 2)
	}

	writeJSON(w, map[string]any{
		"tick":            st.Tick,
		"tick_pretty":     humanize.Comma(int64(st.Tick)),
		"uptime":          humanize.Time(s.started),
		"ants":            st.Ants,
		"visitors":        st.Visitors,
		"corpses_pending": st.Corpses,
		"sanity":          st.Sanity,
		"boredom":         st.Boredom,
		"resources":       resources,
		"watchers":        s.Hub.ClientCount(),
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "journal not available", http.StatusServiceUnavailable)
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	evs, err := s.Store.RecentEvents(limit)
	if err != nil {
		slog.Error("journal query failed", "error", err)
		http.Error(w, "journal query failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, evs)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
