// Package page implements the feed renderer lifecycle of a single page view:
// show placeholders, load the feed once, render it and keep the list in sync
// with the search text. Presentation is delegated to a Surface.
package page

import (
	"context"
	"log"
	"sync"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/render"
)

//go:generate moq -out mocks/surface.go -pkg mocks -skip-ensure -fmt goimports . Surface

// Surface is the host UI the controller draws on
type Surface interface {
	SetStatus(text string)
	ReplaceList(cards []domain.Card)
	SearchText() string
	OnSearchInput(fn func(text string))
	OnScroll(fn func(offset int))
	RequestFrame(fn func())
	SetCompact(compact bool)
}

// Loader loads the feed document, returns fallback document with error on failure
type Loader interface {
	Load(ctx context.Context) (domain.Document, error)
}

// LoaderFunc adapts a function to Loader
type LoaderFunc func(ctx context.Context) (domain.Document, error)

// Load calls f(ctx)
func (f LoaderFunc) Load(ctx context.Context) (domain.Document, error) { return f(ctx) }

// State of the page view
type State int

// page view states, transitions are one-directional
const (
	StateLoading State = iota
	StateLoaded
	StateFiltered
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// Options for controller
type Options struct {
	CollapseErrors   bool // show empty-state card instead of error card on load failure
	CompactThreshold int  // scroll offset after which the header is compacted
	Skeletons        int  // number of skeleton cards shown while loading
}

// Controller drives one page view. Events from the surface are handled one at a time.
type Controller struct {
	loader   Loader
	renderer *render.Renderer
	surface  Surface
	opts     Options

	mu      sync.Mutex
	state   State
	doc     domain.Document
	failed  bool
	query   string
	offset  int
	compact bool
	ticking bool // header update scheduled for the next frame
}

// NewController makes controller for the given surface
func NewController(loader Loader, renderer *render.Renderer, surface Surface, opts Options) *Controller {
	if opts.Skeletons <= 0 {
		opts.Skeletons = 3
	}
	return &Controller{
		loader:   loader,
		renderer: renderer,
		surface:  surface,
		opts:     opts,
		doc:      domain.EmptyDocument(),
	}
}

// Start shows placeholders, loads the feed, renders it with the current search text and
// subscribes to search input and scroll events. Load failure is logged and rendered,
// never returned.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.state = StateLoading
	c.surface.SetStatus(render.LoadingMessage)
	c.surface.ReplaceList(render.SkeletonCards(c.opts.Skeletons))
	c.mu.Unlock()

	doc, err := c.loader.Load(ctx)

	c.mu.Lock()
	if err != nil {
		log.Printf("[WARN] failed to load feed: %v", err)
		c.failed = true
		doc = domain.EmptyDocument()
	}
	c.doc = doc
	c.state = StateLoaded
	c.surface.SetStatus(c.renderer.Status(doc.GeneratedUTC))
	c.renderLocked(c.surface.SearchText())
	c.mu.Unlock()

	c.surface.OnSearchInput(c.handleInput)
	c.surface.OnScroll(c.handleScroll)
	log.Printf("[DEBUG] page view loaded, %d articles, failed=%v", len(doc.Articles), c.failed)
}

// handleInput re-renders the list for the latest search text against the retained articles
func (c *Controller) handleInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateFiltered
	c.renderLocked(text)
}

// handleScroll schedules header update, at most one per frame
func (c *Controller) handleScroll(offset int) {
	c.mu.Lock()
	c.offset = offset
	if c.ticking {
		c.mu.Unlock()
		return
	}
	c.ticking = true
	c.mu.Unlock()
	c.surface.RequestFrame(c.updateHeader)
}

func (c *Controller) updateHeader() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticking = false
	compact := c.offset > c.opts.CompactThreshold
	if compact == c.compact {
		return
	}
	c.compact = compact
	c.surface.SetCompact(compact)
}

// renderLocked replaces surface list content, must be called with mu held
func (c *Controller) renderLocked(query string) {
	c.query = query
	if c.failed && !c.opts.CollapseErrors {
		c.surface.ReplaceList([]domain.Card{render.ErrorCard()})
		return
	}
	c.surface.ReplaceList(c.renderer.Render(c.doc.Articles, query))
}

// State returns current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Query returns the last rendered search text
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Failed reports whether the feed failed to load
func (c *Controller) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

// Compact reports whether the header is compacted
func (c *Controller) Compact() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compact
}

// Document returns loaded document, articles are copied
func (c *Controller) Document() domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.doc
	res.Articles = make([]domain.Article, len(c.doc.Articles))
	copy(res.Articles, c.doc.Articles)
	return res
}
