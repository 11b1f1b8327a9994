package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/umputun/newsdeck/pkg/feed"
)

var errFeedUnavailable = errors.New("feed document is not available")

// rssHandler serves RSS feed of articles matching q
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	view := s.startView(r.Context(), query)
	if view.ctrl.Failed() {
		renderError(w, r, errFeedUnavailable, http.StatusBadGateway)
		return
	}
	_, cards := view.surface.snapshot()

	cfg := s.config.GetFullConfig()
	generator := feed.NewGenerator(cfg.Server.BaseURL, cfg.Display.Title)

	rss, err := generator.GenerateRSS(cards, query)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
