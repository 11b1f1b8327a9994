package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/page"
)

// htmlSurface is a page.Surface kept on the server side for one browser page view.
// The browser sends search input over htmx and gets back the list the controller rendered.
type htmlSurface struct {
	searchMu sync.Mutex // serializes search round trips, input and resulting list
	mu       sync.Mutex
	status   string
	cards    []domain.Card
	searchTx string
	compact  bool
	onInput  func(text string)
	onScroll func(offset int)
}

func newHTMLSurface(search string) *htmlSurface {
	return &htmlSurface{searchTx: search}
}

func (h *htmlSurface) SetStatus(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = text
}

func (h *htmlSurface) ReplaceList(cards []domain.Card) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cards = cards
}

func (h *htmlSurface) SearchText() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.searchTx
}

func (h *htmlSurface) OnSearchInput(fn func(text string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onInput = fn
}

func (h *htmlSurface) OnScroll(fn func(offset int)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onScroll = fn
}

// RequestFrame runs fn right away, the browser does its own frame throttling
func (h *htmlSurface) RequestFrame(fn func()) { fn() }

func (h *htmlSurface) SetCompact(compact bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.compact = compact
}

// input delivers search input event, the callback runs without the surface lock
// as it calls back into ReplaceList
func (h *htmlSurface) input(text string) {
	h.mu.Lock()
	h.searchTx = text
	fn := h.onInput
	h.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

// snapshot returns current status line and a copy of rendered cards
func (h *htmlSurface) snapshot() (status string, cards []domain.Card) {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]domain.Card, len(h.cards))
	copy(res, h.cards)
	return h.status, res
}

// search delivers search input and returns the list rendered for it. Concurrent searches
// on the same view never see each other's list.
func (h *htmlSurface) search(text string) (status string, cards []domain.Card) {
	h.searchMu.Lock()
	defer h.searchMu.Unlock()
	h.input(text)
	return h.snapshot()
}

// pageView is a single loaded page with its own immutable article list
type pageView struct {
	id      string
	ctrl    *page.Controller
	surface *htmlSurface
}

// startView loads the feed and renders it for the given search text, the view is not stored
func (s *Server) startView(ctx context.Context, query string) *pageView {
	display := s.config.GetFullConfig().Display
	surface := newHTMLSurface(query)
	ctrl := page.NewController(s.loader, s.renderer, surface, page.Options{
		CollapseErrors:   display.CollapseErrors,
		CompactThreshold: display.CompactThreshold,
	})
	st := time.Now()
	ctrl.Start(ctx)
	s.metrics.observeLoad(time.Since(st).Seconds(), ctrl.Failed())
	return &pageView{id: uuid.NewString(), ctrl: ctrl, surface: surface}
}

// newView starts a page view and keeps it for subsequent search requests
func (s *Server) newView(ctx context.Context, query string) *pageView {
	view := s.startView(ctx, query)
	s.views.Add(view.id, view)
	s.metrics.pageViews.Inc()
	return view
}
