package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/domain"
)

func TestLoader_LoadHTTP(t *testing.T) {
	t.Run("valid document, no-cache headers", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
			assert.Equal(t, "no-cache", r.Header.Get("Pragma"))
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(articlesDoc))
		}))
		defer server.Close()

		loader := NewLoader(Params{Source: server.URL + "/data/articles.json", UserAgent: "test-agent"})
		doc, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, doc.Articles, 2)

		// every load goes to the source again
		_, err = loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("server error yields fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		doc, err := NewLoader(Params{Source: server.URL}).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
		assert.Equal(t, domain.Document{GeneratedUTC: "", Articles: []domain.Article{}}, doc)
	})

	t.Run("not found yields fallback", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		doc, err := NewLoader(Params{Source: server.URL}).Load(context.Background())
		require.Error(t, err)
		assert.Empty(t, doc.Articles)
	})

	t.Run("network failure yields fallback", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close() // nothing listens anymore

		doc, err := NewLoader(Params{Source: url}).Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.EmptyDocument(), doc)
	})

	t.Run("malformed body yields fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"articles": [`))
		}))
		defer server.Close()

		doc, err := NewLoader(Params{Source: server.URL}).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode feed")
		assert.Equal(t, domain.EmptyDocument(), doc)
	})

	t.Run("single attempt by default", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewLoader(Params{Source: server.URL}).Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("retries when configured", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(articlesDoc))
		}))
		defer server.Close()

		doc, err := NewLoader(Params{Source: server.URL, Retries: 3}).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, doc.Articles, 2)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("document too large", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(articlesDoc))
		}))
		defer server.Close()

		_, err := NewLoader(Params{Source: server.URL, MaxSize: 16}).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds 16 bytes")
	})
}

func TestLoader_LoadFile(t *testing.T) {
	siteDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(siteDir, "data"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "data", "articles.json"), []byte(articlesDoc), 0o600))

	t.Run("relative to site dir", func(t *testing.T) {
		loader := NewLoader(Params{Source: "data/articles.json", SiteDir: siteDir})
		assert.Equal(t, filepath.Join(siteDir, "data", "articles.json"), loader.Source())

		doc, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T10:30:00+00:00", doc.GeneratedUTC)
		assert.Len(t, doc.Articles, 2)
	})

	t.Run("absolute path", func(t *testing.T) {
		path := filepath.Join(siteDir, "data", "articles.json")
		doc, err := NewLoader(Params{Source: path, SiteDir: "/elsewhere"}).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, doc.Articles, 2)
	})

	t.Run("file re-read on every load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "articles.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"generated_utc": "v1", "articles": []}`), 0o600))
		loader := NewLoader(Params{Source: path})

		doc, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v1", doc.GeneratedUTC)

		require.NoError(t, os.WriteFile(path, []byte(`{"generated_utc": "v2", "articles": []}`), 0o600))
		doc, err = loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v2", doc.GeneratedUTC)
	})

	t.Run("missing file yields fallback", func(t *testing.T) {
		doc, err := NewLoader(Params{Source: "data/missing.json", SiteDir: siteDir}).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open file")
		assert.Equal(t, domain.EmptyDocument(), doc)
	})
}
