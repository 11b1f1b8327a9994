// Package render builds presentation-agnostic cards from feed articles.
// Everything here is a total function over in-memory data.
package render

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newsdeck/pkg/domain"
)

// fixed placeholder messages
const (
	EmptyMessage   = "No articles match your search."
	ErrorMessage   = "Failed to load articles. Please refresh the page."
	LoadingMessage = "Loading articles…"
)

// markupRe detects summaries carrying real html, like rss descriptions: a closing tag or a void
// formatting element. Text merely mentioning "<vector>" is not markup.
var markupRe = regexp.MustCompile(`(?i)</[a-z][a-z0-9]*\s*>|<(br|hr|img|p)(\s[^>]*)?/?>`)

// Renderer converts articles into cards
type Renderer struct {
	dates  *DateFormatter
	policy *bluemonday.Policy
}

// NewRenderer makes renderer with the given date formatter
func NewRenderer(dates *DateFormatter) *Renderer {
	return &Renderer{dates: dates, policy: bluemonday.StrictPolicy()}
}

// Render filters articles and converts them into cards. Zero matches produce exactly
// one empty-state card.
func (r *Renderer) Render(articles []domain.Article, query string) []domain.Card {
	matched := Filter(articles, query)
	if len(matched) == 0 {
		return []domain.Card{EmptyCard()}
	}

	cards := make([]domain.Card, 0, len(matched))
	for _, a := range matched {
		cards = append(cards, r.Card(a))
	}
	return cards
}

// Card converts a single article
func (r *Renderer) Card(a domain.Article) domain.Card {
	res := domain.Card{
		Kind:    domain.CardArticle,
		Title:   strings.TrimSpace(a.DisplayTitle()),
		Href:    safeHref(a.Href()),
		Open:    domain.OpenNewTab,
		Badge:   badge(a.Status()),
		Summary: r.summary(a.SummaryEN),
	}
	if a.HasLocal() {
		res.Open = domain.OpenSameTab
	}

	published := a.Published.String()
	res.Date = r.dates.Format(published)
	res.DateHint = r.dates.Relative(published)
	if t, err := r.dates.Parse(published); err == nil {
		res.Published = t
	}
	return res
}

// Status returns "last updated" text for generation timestamp
func (r *Renderer) Status(generatedUTC string) string {
	if strings.TrimSpace(generatedUTC) == "" {
		return "Last updated: unknown"
	}
	return "Last updated: " + r.dates.Format(generatedUTC)
}

// EmptyCard is the placeholder shown when nothing matches
func EmptyCard() domain.Card {
	return domain.Card{Kind: domain.CardEmpty, Message: EmptyMessage}
}

// ErrorCard is the persistent placeholder shown when feed can't be loaded
func ErrorCard() domain.Card {
	return domain.Card{Kind: domain.CardError, Message: ErrorMessage}
}

// SkeletonCards are shown between page load and data arrival
func SkeletonCards(n int) []domain.Card {
	res := make([]domain.Card, n)
	for i := range res {
		res[i] = domain.Card{Kind: domain.CardSkeleton, Message: LoadingMessage}
	}
	return res
}

// summary returns text of the article summary. Html summaries are reduced to their text,
// entities decoded as the presentation layer escapes the result again. Anything else is kept as is.
func (r *Renderer) summary(s string) string {
	if !markupRe.MatchString(s) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(html.UnescapeString(r.policy.Sanitize(s)))
}

func badge(st domain.TranslationStatus) domain.Badge {
	switch st {
	case domain.StatusTranslated:
		return domain.BadgeTranslated
	case domain.StatusPending:
		return domain.BadgePending
	default:
		return domain.BadgeNone
	}
}

// safeHref allows http(s) and relative links only, anything else becomes "#"
func safeHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return "#"
	}
	u, err := url.Parse(href)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return href
	default:
		return "#"
	}
}
