package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/", "Inter News")

	pubTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cards := []domain.Card{
		{
			Kind:      domain.CardArticle,
			Title:     "EU Summit",
			Href:      "https://source.example.com/eu-summit",
			Open:      domain.OpenNewTab,
			Badge:     domain.BadgePending,
			Summary:   "Leaders meet",
			Published: pubTime,
		},
		{
			Kind:    domain.CardArticle,
			Title:   "Local <b>page</b>",
			Href:    "articles/local-page.html",
			Open:    domain.OpenSameTab,
			Badge:   domain.BadgeTranslated,
			Summary: "Translated & hosted",
		},
	}

	t.Run("all articles", func(t *testing.T) {
		rss, err := generator.GenerateRSS(cards, "")
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Inter News</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<atom:link href="https://example.com/rss" rel="self" type="application/rss+xml"></atom:link>`)
		assert.Contains(t, rss, `<description>Latest articles</description>`)
		assert.Contains(t, rss, `<generator>newsdeck</generator>`)
		assert.NotContains(t, rss, `xmlns="http://www.w3.org/2005/Atom"`, "self link uses the declared atom prefix")

		// first item
		assert.Contains(t, rss, `<title>EU Summit</title>`)
		assert.Contains(t, rss, `<link>https://source.example.com/eu-summit</link>`)
		assert.Contains(t, rss, `<guid isPermaLink="true">https://source.example.com/eu-summit</guid>`)
		assert.Contains(t, rss, `<pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>`)
		assert.Contains(t, rss, `<category>translation pending</category>`)

		// second item, relative link made absolute, text escaped
		assert.Contains(t, rss, `<link>https://example.com/articles/local-page.html</link>`)
		assert.Contains(t, rss, `<title>Local &lt;b&gt;page&lt;/b&gt;</title>`)
		assert.Contains(t, rss, `<description>Translated &amp; hosted</description>`)
		assert.Contains(t, rss, `<category>translated page</category>`)
	})

	t.Run("query in title and self link", func(t *testing.T) {
		rss, err := generator.GenerateRSS(cards[:1], "eu summit")
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>Inter News - &#34;eu summit&#34;</title>`)
		assert.Contains(t, rss, `href="https://example.com/rss?q=eu+summit"`)
		assert.NotContains(t, rss, "local-page")
	})

	t.Run("readable by feed parser", func(t *testing.T) {
		rss, err := generator.GenerateRSS(cards, "")
		require.NoError(t, err)

		fp, err := gofeed.NewParser().ParseString(rss)
		require.NoError(t, err)
		assert.Equal(t, "Inter News", fp.Title)
		assert.Equal(t, "newsdeck", fp.Generator)
		require.Len(t, fp.Items, 2)
		assert.Equal(t, "https://source.example.com/eu-summit", fp.Items[0].GUID)
		assert.Equal(t, "Local <b>page</b>", fp.Items[1].Title)
		require.NotNil(t, fp.Items[0].PublishedParsed)
		assert.True(t, pubTime.Equal(*fp.Items[0].PublishedParsed))
		assert.Contains(t, fp.FeedLink, "https://example.com/rss")

		doc, err := Decode([]byte(rss), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Count)
		assert.Equal(t, "https://example.com/articles/local-page.html", doc.Articles[1].URL)
	})

	t.Run("placeholder cards skipped", func(t *testing.T) {
		rss, err := generator.GenerateRSS([]domain.Card{{Kind: domain.CardEmpty, Message: "No articles match your search."}}, "zzz")
		require.NoError(t, err)
		assert.NotContains(t, rss, "<item>")
		assert.NotContains(t, rss, "No articles match")
	})
}

func TestGenerator_absoluteLink(t *testing.T) {
	g := NewGenerator("https://example.com/site", "t")
	tests := []struct {
		href, want string
	}{
		{"", "https://example.com/site/"},
		{"#", "https://example.com/site/"},
		{"https://other.com/a", "https://other.com/a"},
		{"articles/a.html", "https://example.com/site/articles/a.html"},
		{"/articles/a.html", "https://example.com/articles/a.html"},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, g.absoluteLink(tt.href))
		})
	}
}
