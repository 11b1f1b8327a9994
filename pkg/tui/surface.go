package tui

import (
	"sync"

	"github.com/umputun/newsdeck/pkg/domain"
)

// Surface is the terminal page.Surface. The controller writes into it, possibly from
// the load goroutine, and the bubbletea model reads it in View.
type Surface struct {
	mu       sync.Mutex
	status   string
	cards    []domain.Card
	search   string
	compact  bool
	onInput  func(text string)
	onScroll func(offset int)
	frames   []func()
}

// NewSurface makes empty surface
func NewSurface() *Surface {
	return &Surface{}
}

// SetStatus sets header status line
func (s *Surface) SetStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = text
}

// ReplaceList replaces all cards
func (s *Surface) ReplaceList(cards []domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
}

// SearchText returns current search input value
func (s *Surface) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// OnSearchInput subscribes to search input changes
func (s *Surface) OnSearchInput(fn func(text string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInput = fn
}

// OnScroll subscribes to list scroll changes
func (s *Surface) OnScroll(fn func(offset int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onScroll = fn
}

// RequestFrame queues fn until the next frame tick
func (s *Surface) RequestFrame(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, fn)
}

// SetCompact switches header between full and compact form
func (s *Surface) SetCompact(compact bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compact = compact
}

// input stores search text and notifies subscriber without holding the lock
func (s *Surface) input(text string) {
	s.mu.Lock()
	s.search = text
	fn := s.onInput
	s.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

func (s *Surface) scroll(offset int) {
	s.mu.Lock()
	fn := s.onScroll
	s.mu.Unlock()
	if fn != nil {
		fn(offset)
	}
}

// runFrames executes queued frame callbacks, returns number of callbacks run
func (s *Surface) runFrames() int {
	s.mu.Lock()
	frames := s.frames
	s.frames = nil
	s.mu.Unlock()
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

func (s *Surface) pendingFrames() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames) > 0
}

// snapshot returns what should be drawn
func (s *Surface) snapshot() (status string, cards []domain.Card, compact bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.cards, s.compact
}
