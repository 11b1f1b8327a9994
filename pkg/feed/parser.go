package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/umputun/newsdeck/pkg/domain"
)

// Format of the feed document
type Format string

// supported formats
const (
	FormatAuto     Format = "auto"
	FormatArticles Format = "articles" // articles.json produced by the ingest pipeline
	FormatRSS      Format = "rss"      // anything gofeed understands: rss, atom, json feed
)

// Decode parses raw feed document in the given format
func Decode(data []byte, format Format) (domain.Document, error) {
	if format == FormatAuto {
		format = detectFormat(data)
	}

	switch format {
	case FormatArticles:
		return decodeArticles(data)
	case FormatRSS:
		return decodeFeed(data)
	default:
		return domain.EmptyDocument(), fmt.Errorf("unsupported format %q", format)
	}
}

// detectFormat sniffs document format. XML and JSON Feed documents go to gofeed,
// everything else is treated as articles document.
func detectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatArticles
	}
	if trimmed[0] == '<' {
		return FormatRSS
	}

	var probe struct {
		Version  string          `json:"version"`
		Items    json.RawMessage `json:"items"`
		Articles json.RawMessage `json:"articles"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return FormatArticles
	}
	if probe.Articles == nil && probe.Items != nil && strings.Contains(probe.Version, "jsonfeed.org") {
		return FormatRSS
	}
	return FormatArticles
}

func decodeArticles(data []byte) (domain.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.EmptyDocument(), errors.New("empty document")
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.EmptyDocument(), fmt.Errorf("unmarshal articles: %w", err)
	}
	if doc.Articles == nil {
		doc.Articles = []domain.Article{}
	}
	return doc, nil
}

// decodeFeed converts rss/atom/json feed into articles document. Such feeds have no
// translation workflow, so articles are marked as not pending.
func decodeFeed(data []byte) (domain.Document, error) {
	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return domain.EmptyDocument(), fmt.Errorf("parse feed: %w", err)
	}

	doc := domain.Document{
		Source: feed.Title,
		Articles: lo.Map(feed.Items, func(item *gofeed.Item, _ int) domain.Article {
			res := domain.Article{
				ID:        item.GUID,
				Feed:      feed.Title,
				TitleEN:   strings.TrimSpace(item.Title),
				SummaryEN: strings.TrimSpace(item.Description),
				URL:       item.Link,
				Published: domain.DateValue(item.Published),
				Pending:   lo.ToPtr(false),
			}
			if item.PublishedParsed != nil {
				res.Published = domain.DateValue(item.PublishedParsed.UTC().Format(time.RFC3339))
			} else if item.UpdatedParsed != nil {
				res.Published = domain.DateValue(item.UpdatedParsed.UTC().Format(time.RFC3339))
			}
			return res
		}),
	}
	if feed.UpdatedParsed != nil {
		doc.GeneratedUTC = feed.UpdatedParsed.UTC().Format(time.RFC3339)
	}
	doc.Count = len(doc.Articles)
	return doc, nil
}
