package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newsdeck/pkg/domain"
)

// Params defines loader settings
type Params struct {
	Source    string        // path to feed document or http(s) URL
	SiteDir   string        // base directory for relative paths
	Format    Format        // document format, FormatAuto detects it
	Timeout   time.Duration // http client timeout, zero means none
	Retries   int           // number of attempts, 1 is a single best-effort fetch
	UserAgent string
	MaxSize   int64 // max document size in bytes
}

// Loader reads the feed document on every call, there is no caching layer
type Loader struct {
	source    string
	remote    bool
	format    Format
	client    *http.Client
	attempts  int
	userAgent string
	maxSize   int64
}

// NewLoader creates a new feed document loader
func NewLoader(p Params) *Loader {
	res := &Loader{
		source:    p.Source,
		remote:    strings.HasPrefix(p.Source, "http://") || strings.HasPrefix(p.Source, "https://"),
		format:    p.Format,
		attempts:  p.Retries,
		userAgent: p.UserAgent,
		maxSize:   p.MaxSize,
		client: &http.Client{
			Timeout: p.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	if !res.remote && p.SiteDir != "" && !filepath.IsAbs(p.Source) {
		res.source = filepath.Join(p.SiteDir, filepath.FromSlash(p.Source))
	}
	if res.attempts < 1 {
		res.attempts = 1
	}
	if res.maxSize <= 0 {
		res.maxSize = 10 * 1024 * 1024
	}
	if res.format == "" {
		res.format = FormatAuto
	}
	if res.userAgent == "" {
		res.userAgent = "Newsdeck/1.0"
	}
	return res
}

// Source returns resolved source location
func (l *Loader) Source() string {
	return l.source
}

// Load reads and parses the feed document. On any failure it returns the empty
// fallback document together with the error, the caller decides how to report it.
func (l *Loader) Load(ctx context.Context) (domain.Document, error) {
	var data []byte
	var lastErr error
	retrier := repeater.NewBackoff(l.attempts, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		d, err := l.read(ctx)
		if err != nil {
			lastErr = err
			return err
		}
		data = d
		return nil
	})
	if err != nil {
		if lastErr != nil {
			err = lastErr
		}
		return domain.EmptyDocument(), fmt.Errorf("load feed %s: %w", l.source, err)
	}

	doc, err := Decode(data, l.format)
	if err != nil {
		return domain.EmptyDocument(), fmt.Errorf("decode feed %s: %w", l.source, err)
	}
	return doc, nil
}

// read gets raw document from file or http source
func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if !l.remote {
		return l.readFile()
	}
	return l.fetch(ctx)
}

func (l *Loader) readFile() ([]byte, error) {
	fh, err := os.Open(l.source) //nolint:gosec // source path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer fh.Close()
	return l.readLimited(fh)
}

// fetch retrieves document from a URL, non-2xx status is an error
func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	addFetchHeaders(req, l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return l.readLimited(resp.Body)
}

func (l *Loader) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("document exceeds %d bytes", l.maxSize)
	}
	return data, nil
}
