package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Article represents a single entry of the feed document.
// All fields are optional, empty string means absent.
type Article struct {
	ID        string    `json:"id,omitempty"`
	Feed      string    `json:"feed,omitempty"`
	TitleEN   string    `json:"title_en,omitempty"`
	TitleIT   string    `json:"title_it,omitempty"`
	SummaryEN string    `json:"summary_en,omitempty"`
	SummaryIT string    `json:"summary_it,omitempty"`
	URL       string    `json:"url,omitempty"`
	LocalURL  string    `json:"local_url,omitempty"`
	Published DateValue `json:"published,omitempty"`
	Pending   *bool     `json:"pending,omitempty"`
}

// DisplayTitle returns english title with fallback to italian one
func (a Article) DisplayTitle() string {
	if a.TitleEN != "" {
		return a.TitleEN
	}
	return a.TitleIT
}

// Href returns link target, local translated page takes precedence over the source url
func (a Article) Href() string {
	if a.LocalURL != "" {
		return a.LocalURL
	}
	return a.URL
}

// HasLocal reports whether a locally hosted translation is available
func (a Article) HasLocal() bool {
	return a.LocalURL != ""
}

// Status returns translation status of the article.
// Explicit pending flag wins, local copy means translated, explicit pending=false
// without local copy means no status, unset flag without local copy means pending.
func (a Article) Status() TranslationStatus {
	switch {
	case a.Pending != nil && *a.Pending:
		return StatusPending
	case a.HasLocal():
		return StatusTranslated
	case a.Pending != nil:
		return StatusUnknown
	default:
		return StatusPending
	}
}

// Matches checks if normalized (trimmed, lower-cased) query is a substring of english title
// or english summary. Empty query matches everything.
func (a Article) Matches(query string) bool {
	if query == "" {
		return true
	}
	if a.TitleEN != "" && strings.Contains(strings.ToLower(a.TitleEN), query) {
		return true
	}
	return a.SummaryEN != "" && strings.Contains(strings.ToLower(a.SummaryEN), query)
}

// TranslationStatus of an article
type TranslationStatus string

// translation statuses
const (
	StatusUnknown    TranslationStatus = ""
	StatusTranslated TranslationStatus = "translated"
	StatusPending    TranslationStatus = "pending"
)

// DateValue keeps a date-like value as it came from the producer, string or number.
// Parsing is left to the presentation layer.
type DateValue string

// UnmarshalJSON accepts strings, numbers and null
func (d *DateValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DateValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// booleans, objects and arrays are not dates, keep the raw text for display
		*d = DateValue(data)
		return nil //nolint:nilerr // unparsable date values are shown as-is
	}
	*d = DateValue(n.String())
	return nil
}

// String returns raw date value
func (d DateValue) String() string { return string(d) }
