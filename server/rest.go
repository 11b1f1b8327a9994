package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/umputun/newsdeck/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"source":  s.loader.Source(),
		"views":   s.views.Len(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// articlesResponse is the JSON form of a rendered page view
type articlesResponse struct {
	Source       string        `json:"source,omitempty"`
	GeneratedUTC string        `json:"generated_utc"`
	Status       string        `json:"status"`
	Query        string        `json:"query,omitempty"`
	Failed       bool          `json:"failed"`
	Count        int           `json:"count"`
	Cards        []domain.Card `json:"cards"`
}

// apiArticlesHandler loads the feed and returns cards matching q as JSON.
// Load failure is reported in the body, same way the page shows it.
func (s *Server) apiArticlesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	view := s.startView(r.Context(), query)
	status, cards := view.surface.snapshot()
	doc := view.ctrl.Document()

	renderJSON(w, r, http.StatusOK, articlesResponse{
		Source:       doc.Source,
		GeneratedUTC: doc.GeneratedUTC,
		Status:       status,
		Query:        query,
		Failed:       view.ctrl.Failed(),
		Count:        lo.CountBy(cards, func(c domain.Card) bool { return c.IsArticle() }),
		Cards:        cards,
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
