package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/render"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/loader.go -pkg mocks -skip-ensure -fmt goimports . Loader

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	loader    Loader
	renderer  *render.Renderer
	templates *template.Template
	views     *expirable.LRU[string, *pageView]
	metrics   *metrics
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Loader loads the feed document on every call
type Loader interface {
	Load(ctx context.Context) (domain.Document, error)
	Source() string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFullConfig() *config.Config
}

// New initializes a new server instance
func New(cfg ConfigProvider, loader Loader, version string, debug bool) *Server {
	full := cfg.GetFullConfig()
	s := &Server{
		config:    cfg,
		loader:    loader,
		renderer:  render.NewRenderer(render.NewDateFormatter(full.Display.DateLayout, full.Display.Timezone)),
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		views:     expirable.NewLRU[string, *pageView](full.Server.MaxViews, nil, full.Server.ViewTTL),
		metrics:   newMetrics(),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s, feed source %s", listen, s.loader.Source())

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	throttle := s.config.GetFullConfig().Server.Throttle // zero means unlimited

	s.router.Use(rest.AppInfo("newsdeck", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(int64(throttle)))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// page routes, never cached by the browser
	s.router.Group().Route(func(r *routegroup.Bundle) {
		r.Use(noCache)
		r.HandleFunc("GET /{$}", s.pageHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
	})

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.Use(noCache)
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.apiArticlesHandler)
	})

	// RSS export of matching articles
	s.router.HandleFunc("GET /rss", s.rssHandler)

	s.router.Handle("GET /metrics", s.metrics.handler())

	// static site: css, translated pages and the feed document itself
	siteDir := s.config.GetFullConfig().Server.SiteDir
	s.router.Handle("GET /", s.staticHandler(siteDir))
}

// staticHandler serves site directory, feed documents are served with no-cache directives
func (s *Server) staticHandler(siteDir string) http.Handler {
	fs := http.FileServer(http.Dir(siteDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".json") || strings.HasSuffix(r.URL.Path, ".xml") {
			setNoCacheHeaders(w)
		}
		fs.ServeHTTP(w, r)
	})
}

// noCache middleware disables client and proxy caching
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setNoCacheHeaders(w)
		next.ServeHTTP(w, r)
	})
}

func setNoCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
