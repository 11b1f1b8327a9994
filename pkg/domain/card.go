package domain

import "time"

// CardKind defines what a card represents
type CardKind string

// card kinds
const (
	CardArticle  CardKind = "article"
	CardEmpty    CardKind = "empty"
	CardError    CardKind = "error"
	CardSkeleton CardKind = "skeleton"
)

// OpenPolicy defines where a card link opens
type OpenPolicy string

// open policies
const (
	OpenNewTab  OpenPolicy = "new-tab"
	OpenSameTab OpenPolicy = "same-tab"
)

// Badge is a small status indicator of translation availability
type Badge string

// badges
const (
	BadgeNone       Badge = ""
	BadgeTranslated Badge = "translated"
	BadgePending    Badge = "pending"
)

// Label returns human readable badge text
func (b Badge) Label() string {
	switch b {
	case BadgeTranslated:
		return "translated page"
	case BadgePending:
		return "translation pending"
	default:
		return ""
	}
}

// Card is a structured, presentation-agnostic rendering of one article.
// Text fields are plain text and must be escaped by the presentation layer.
type Card struct {
	Kind     CardKind   `json:"kind"`
	Title    string     `json:"title,omitempty"`
	Href     string     `json:"href,omitempty"`
	Open     OpenPolicy `json:"open,omitempty"`
	Badge    Badge      `json:"badge,omitempty"`
	Date     string     `json:"date,omitempty"`
	DateHint string     `json:"date_hint,omitempty"` // relative time, i.e. "3 hours ago"
	Summary  string     `json:"summary,omitempty"`
	Message  string     `json:"message,omitempty"` // placeholder text for non-article cards

	Published time.Time `json:"-"` // parsed publication time, zero if unknown
}

// NewTab reports whether card link should open in a new tab
func (c Card) NewTab() bool { return c.Open == OpenNewTab }

// IsArticle reports whether the card represents an article
func (c Card) IsArticle() bool { return c.Kind == CardArticle }
