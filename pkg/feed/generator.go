package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/newsdeck/pkg/domain"
)

// Generator creates RSS feeds from rendered cards
type Generator struct {
	baseURL string
	title   string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL, title string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		title:   title,
	}
}

// GenerateRSS creates an RSS 2.0 feed from article cards matching the query.
// Non-article cards (placeholders) are skipped.
func (g *Generator) GenerateRSS(cards []domain.Card, query string) (string, error) {
	// determine title
	title := g.title
	selfLink := g.baseURL + "/rss"
	description := "Latest articles"
	if query != "" {
		title = fmt.Sprintf("%s - %q", g.title, query)
		selfLink += "?q=" + url.QueryEscape(query)
		description = fmt.Sprintf("Articles matching %q", query)
	}

	// convert cards to RSS items
	rssItems := make([]*CardItem, 0, len(cards))
	for _, card := range cards {
		if !card.IsArticle() {
			continue
		}
		rssItems = append(rssItems, g.cardItem(card))
	}

	// create RSS structure
	feed := &RSS{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: &Channel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   description,
			SelfLink:      &SelfLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			Generator:     "newsdeck",
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	// marshal to XML
	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	// add XML declaration
	return xml.Header + string(output), nil
}

// cardItem converts a card to an RSS item, local links are made absolute
func (g *Generator) cardItem(card domain.Card) *CardItem {
	link := g.absoluteLink(card.Href)
	item := &CardItem{
		Title:       card.Title,
		Link:        link,
		GUID:        GUID{Value: link, IsPermaLink: true},
		Description: card.Summary,
	}
	if !card.Published.IsZero() {
		item.PubDate = card.Published.Format(time.RFC1123Z)
	}
	if label := card.Badge.Label(); label != "" {
		item.Categories = []string{label}
	}
	return item
}

func (g *Generator) absoluteLink(href string) string {
	if href == "" || href == "#" {
		return g.baseURL + "/"
	}
	u, err := url.Parse(href)
	if err != nil || u.IsAbs() {
		return href
	}
	base, err := url.Parse(g.baseURL + "/")
	if err != nil {
		return href
	}
	return base.ResolveReference(u).String()
}
