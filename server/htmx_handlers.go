package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/umputun/newsdeck/pkg/domain"
)

const (
	// template names
	templateIndex        = "index.html"
	templateArticlesList = "articles-list.html"
)

// pageData is the full page template data
type pageData struct {
	Title            string
	Source           string
	Status           string
	Query            string
	ViewID           string
	Cards            []domain.Card
	CompactThreshold int
	Version          string
}

// listData is the articles list fragment data, OOB set for htmx out-of-band updates
type listData struct {
	Cards  []domain.Card
	Status string
	ViewID string
	OOB    bool
}

// pageHandler renders the full page for a new page view
func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	view := s.newView(r.Context(), query)
	status, cards := view.surface.snapshot()

	display := s.config.GetFullConfig().Display
	source := view.ctrl.Document().Source
	data := pageData{
		Title:            display.Title,
		Source:           source,
		Status:           status,
		Query:            query,
		ViewID:           view.id,
		Cards:            cards,
		CompactThreshold: display.CompactThreshold,
		Version:          s.version,
	}

	if err := s.renderTemplate(w, templateIndex, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// articlesHandler re-renders articles list for the search text of an existing page view.
// Unknown or expired view gets a new one, and the view id and status are updated out-of-band.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	// plain requests get the full page
	if r.Header.Get("HX-Request") != "true" {
		target := "/"
		if query != "" {
			target += "?q=" + url.QueryEscape(query)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	data := listData{}
	view, ok := s.views.Get(r.URL.Query().Get("view"))
	if ok {
		s.metrics.searches.Inc()
		data.Status, data.Cards = view.surface.search(query)
	} else {
		log.Printf("[DEBUG] page view %q not found, starting new one", r.URL.Query().Get("view"))
		view = s.newView(r.Context(), query)
		data.Status, data.Cards = view.surface.snapshot()
		data.OOB = true
	}

	data.ViewID = view.id
	if err := s.renderTemplate(w, templateArticlesList, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render articles", err)
	}
}

// renderTemplate executes named template into a buffer and writes it out on success
func (s *Server) renderTemplate(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
	return nil
}

// respondWithError logs the error and sends an html error fragment for htmx requests
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	log.Printf("[ERROR] %s: %v", message, err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, werr := fmt.Fprintf(w, `<div class="card card-error">%s</div>`, template.HTMLEscapeString(message)); werr != nil {
		log.Printf("[WARN] failed to write error response: %v", werr)
	}
}
