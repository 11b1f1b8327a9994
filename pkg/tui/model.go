// Package tui is the terminal presentation of the feed renderer. It implements
// page.Surface on top of a bubbletea program.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/page"
	"github.com/umputun/newsdeck/pkg/render"
)

const (
	frameInterval = time.Second / 60
	wheelStep     = 3
	defaultWidth  = 80
	defaultHeight = 24
)

type loadedMsg struct{}

type frameMsg struct{}

// Params for the terminal view
type Params struct {
	Title    string
	Source   string
	Loader   page.Loader
	Renderer *render.Renderer
	Options  page.Options
}

// Model is the bubbletea model of a single page view
type Model struct {
	ctx     context.Context
	ctrl    *page.Controller
	surface *Surface
	search  textinput.Model
	styles  styles
	title   string
	source  string

	width, height  int
	offset         int // first visible list line
	loaded         bool
	frameScheduled bool
}

// New makes model with its own surface and controller
func New(ctx context.Context, p Params) *Model {
	surface := NewSurface()
	ti := textinput.New()
	ti.Placeholder = "Search articles"
	ti.Prompt = "/ "
	ti.Focus()

	return &Model{
		ctx:     ctx,
		ctrl:    page.NewController(p.Loader, p.Renderer, surface, p.Options),
		surface: surface,
		search:  ti,
		styles:  defaultStyles(),
		title:   p.Title,
		source:  p.Source,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Run starts the interactive program and blocks until the user quits or ctx is canceled
func Run(ctx context.Context, p Params) error {
	prog := tea.NewProgram(New(ctx, p), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}

// Init starts feed loading
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCmd())
}

// loadCmd runs controller start in bubbletea's goroutine, the surface is updated directly
func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Start(m.ctx)
		return loadedMsg{}
	}
}

// Update handles bubbletea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(m.width-runewidth.StringWidth(m.search.Prompt)-1, 1)
		m.setOffset(m.offset)
		return m, m.frameCmd()

	case loadedMsg:
		m.loaded = true
		// search text may have changed while loading
		if m.search.Value() != m.surface.SearchText() {
			m.surface.input(m.search.Value())
		}
		m.setOffset(m.offset)
		return m, nil

	case frameMsg:
		m.frameScheduled = false
		m.surface.runFrames()
		return m, m.frameCmd()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.setOffset(m.offset - wheelStep)
		case tea.MouseButtonWheelDown:
			m.setOffset(m.offset + wheelStep)
		}
		return m, m.frameCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.setOffset(m.offset - 1)
			return m, m.frameCmd()
		case "down":
			m.setOffset(m.offset + 1)
			return m, m.frameCmd()
		case "pgup":
			m.setOffset(m.offset - m.listHeight())
			return m, m.frameCmd()
		case "pgdown":
			m.setOffset(m.offset + m.listHeight())
			return m, m.frameCmd()
		case "ctrl+home":
			m.setOffset(0)
			return m, m.frameCmd()
		case "ctrl+end":
			m.setOffset(len(m.listLines()))
			return m, m.frameCmd()
		case "home", "end":
			// with search text these move the input cursor
			if m.search.Value() != "" {
				break
			}
			if msg.String() == "home" {
				m.setOffset(0)
			} else {
				m.setOffset(len(m.listLines()))
			}
			return m, m.frameCmd()
		}
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.applySearch()
	}
	return m, cmd
}

// applySearch delivers the search input event. Before load completes there is no
// subscriber yet and the text is picked up by the initial render.
func (m *Model) applySearch() {
	m.surface.input(m.search.Value())
	m.setOffset(m.offset)
}

// setOffset clamps and sets list offset, reporting it to the controller on change
func (m *Model) setOffset(offset int) {
	maxOffset := max(len(m.listLines())-m.listHeight(), 0)
	offset = min(max(offset, 0), maxOffset)
	if offset == m.offset {
		return
	}
	m.offset = offset
	m.surface.scroll(offset)
}

// frameCmd schedules a frame tick if some header update is waiting for it
func (m *Model) frameCmd() tea.Cmd {
	if m.frameScheduled || !m.surface.pendingFrames() {
		return nil
	}
	m.frameScheduled = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// View renders header, search input, visible part of the list and help line
func (m *Model) View() string {
	lines := m.listLines()
	end := min(m.offset+m.listHeight(), len(lines))
	start := min(m.offset, end)

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.truncate("↑/↓ scroll · ctrl+home/end jump · type to search · esc quit")))
	return b.String()
}

func (m *Model) headerView() string {
	status, _, compact := m.surface.snapshot()
	if compact {
		return m.styles.compact.Render(m.truncate(m.title + " · " + status))
	}
	title := m.title
	if m.source != "" {
		title += " · " + m.source
	}
	return m.styles.header.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(m.truncate(title)),
		m.styles.status.Render(m.truncate(status)),
	))
}

// listHeight is the number of list lines fitting on screen
func (m *Model) listHeight() int {
	_, _, compact := m.surface.snapshot()
	header := 3 // title, status, padding
	if compact {
		header = 1
	}
	// search line, blank line and help line
	return max(m.height-header-3, 1)
}

// listLines renders all cards into lines, cards separated by a blank line
func (m *Model) listLines() []string {
	_, cards, _ := m.surface.snapshot()
	res := make([]string, 0, len(cards)*4)
	for i, c := range cards {
		if i > 0 {
			res = append(res, "")
		}
		res = append(res, m.cardLines(c)...)
	}
	return res
}

func (m *Model) cardLines(c domain.Card) []string {
	switch c.Kind {
	case domain.CardArticle:
	case domain.CardError:
		return []string{m.styles.errorMsg.Render(m.truncate(c.Message))}
	case domain.CardSkeleton:
		return []string{m.styles.skeleton.Render(strings.Repeat("░", max(min(m.width, 40), 1)))}
	default:
		return []string{m.styles.message.Render(m.truncate(c.Message))}
	}

	res := []string{m.styles.cardTitle.Render(m.truncate(c.Title))}

	var meta []string
	switch c.Badge {
	case domain.BadgeTranslated:
		meta = append(meta, m.styles.translated.Render(c.Badge.Label()))
	case domain.BadgePending:
		meta = append(meta, m.styles.pending.Render(c.Badge.Label()))
	}
	if c.Date != "" {
		date := c.Date
		if c.DateHint != "" {
			date += " (" + c.DateHint + ")"
		}
		meta = append(meta, m.styles.meta.Render(date))
	}
	if len(meta) > 0 {
		res = append(res, strings.Join(meta, m.styles.meta.Render(" · ")))
	}

	if c.Summary != "" {
		wrapped := lipgloss.NewStyle().Width(m.width).Render(c.Summary)
		for _, line := range strings.Split(wrapped, "\n") {
			res = append(res, m.styles.summary.Render(strings.TrimRight(line, " ")))
		}
	}

	marker := "→ "
	if c.NewTab() {
		marker = "↗ "
	}
	res = append(res, m.styles.link.Render(m.truncate(marker+c.Href)))
	return res
}

// truncate cuts text to the screen width, counting wide runes
func (m *Model) truncate(s string) string {
	return runewidth.Truncate(s, m.width, "…")
}
