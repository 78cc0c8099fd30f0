package ephem

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/litescript/ls-comaflux/internal/logging"
)

// Source resolves the raw ephemeris text for a run: a local file override,
// a previously cached response, or a live Horizons fetch.
type Source struct {
	client   *http.Client
	url      string
	cacheDir string
	noCache  bool
	log      *logging.Logger
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(s *Source) {
		s.client = client
	}
}

// WithURL overrides the Horizons endpoint (used by tests).
func WithURL(url string) SourceOption {
	return func(s *Source) {
		s.url = url
	}
}

// WithCacheDir sets the directory for raw-response cache files.
func WithCacheDir(dir string) SourceOption {
	return func(s *Source) {
		s.cacheDir = dir
	}
}

// WithoutCache disables both cache reads and writes.
func WithoutCache() SourceOption {
	return func(s *Source) {
		s.noCache = true
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) SourceOption {
	return func(s *Source) {
		s.log = log
	}
}

// NewSource creates an ephemeris source.
func NewSource(opts ...SourceOption) *Source {
	s := &Source{
		url:      HorizonsAPIURL,
		cacheDir: ".",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: RequestTimeout}
	}
	if s.log == nil {
		s.log = logging.New(logging.LevelInfo)
	}
	return s
}

// FromFile reads a local ephemeris file verbatim. A missing file is a
// configuration error, reported before any parsing happens.
func (s *Source) FromFile(path string) (*Ephemeris, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ephemeris file: %w", err)
	}
	return s.parse(string(data), "file: "+path)
}

// Fetch returns the ephemeris for a query, preferring a cached response
// when one exists for the same target, window, and step.
func (s *Source) Fetch(ctx context.Context, q Query) (*Ephemeris, error) {
	if !s.noCache {
		if raw, path, ok := readCache(s.cacheDir, q); ok {
			s.log.Debug("Using cached ephemeris %s", path)
			return s.parse(raw, "cache: "+path)
		}
	}

	reqURL := s.url + "?" + requestQuery(q)
	s.log.Debug("Fetching %s", reqURL)
	raw, err := fetch(ctx, s.client, reqURL)
	if err != nil {
		return nil, err
	}

	if !s.noCache {
		if err := writeCache(s.cacheDir, q, raw); err != nil {
			s.log.Warn("Cache write failed: %v", err)
		}
	}

	return s.parse(raw, "url: "+reqURL)
}

func (s *Source) parse(raw, provenance string) (*Ephemeris, error) {
	t, err := ParseTable(raw)
	if err != nil {
		return nil, err
	}
	e, err := FromTable(t)
	if err != nil {
		return nil, err
	}
	e.Provenance = []string{provenance}
	s.log.Debug("Parsed %d ephemeris rows", e.Len())
	return e, nil
}
