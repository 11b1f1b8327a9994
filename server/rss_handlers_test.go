package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/newsdeck/pkg/domain"
)

func TestServer_rssHandler(t *testing.T) {
	cfg := testConfig(t)
	cfg.Display.Title = "Newsdeck"
	srv := testServer(t, cfg, loaderMock(testDocument(), nil))

	t.Run("all articles", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.rssHandler(w, httptest.NewRequest(http.MethodGet, "/rss", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "<title>Newsdeck</title>")
		assert.Contains(t, body, "<title>EU Summit</title>")
		assert.Contains(t, body, "<link>https://news.example.com/eu</link>")
		assert.Contains(t, body, "<link>http://example.com/articles/tw.html</link>")
		assert.Contains(t, body, "<title>Solo italiano</title>")
	})

	t.Run("filtered", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.rssHandler(w, httptest.NewRequest(http.MethodGet, "/rss?q=summit", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>EU Summit</title>")
		assert.NotContains(t, body, "Transfer window")
		assert.Contains(t, body, "Articles matching")
	})

	t.Run("no match has no items", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.rssHandler(w, httptest.NewRequest(http.MethodGet, "/rss?q=zzz", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<item>")
		assert.NotContains(t, w.Body.String(), "No articles match")
	})
}

func TestServer_rssHandlerLoadFailure(t *testing.T) {
	srv := testServer(t, testConfig(t), loaderMock(domain.Document{}, errors.New("timeout")))

	w := httptest.NewRecorder()
	srv.rssHandler(w, httptest.NewRequest(http.MethodGet, "/rss", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "feed document is not available")
}
