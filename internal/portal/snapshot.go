// Package portal fetches official government portal pages and extracts
// their text so the narrative generator can ground its prose in what the
// portal actually says. Snapshots are best-effort: a failed fetch only
// means the prompt goes out without the excerpt.
package portal

import (
	"context"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/wanjiru/huduma-guide/internal/fetch"
)

// DefaultTTL is how long a snapshot stays fresh. Portal content changes
// rarely; an hour keeps repeat requests for popular services cheap.
const DefaultTTL = time.Hour

// MaxExcerptLength caps the text placed into a prompt.
const MaxExcerptLength = 2000

// Snapshotter fetches and caches portal page text.
type Snapshotter struct {
	options    *fetch.Options
	ttl        time.Duration
	useBrowser bool
	verbose    bool

	mu    sync.Mutex
	cache map[string]cachedSnapshot
}

type cachedSnapshot struct {
	text      string
	fetchedAt time.Time
}

// Config holds snapshotter configuration.
type Config struct {
	TTL        time.Duration
	UseBrowser bool
	Verbose    bool
	Options    *fetch.Options
}

// NewSnapshotter creates a snapshotter with the given configuration.
func NewSnapshotter(cfg *Config) *Snapshotter {
	if cfg == nil {
		cfg = &Config{}
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	opts := cfg.Options
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &Snapshotter{
		options:    opts,
		ttl:        ttl,
		useBrowser: cfg.UseBrowser,
		verbose:    cfg.Verbose,
		cache:      make(map[string]cachedSnapshot),
	}
}

// Text returns the extracted text of the portal page at url, serving from
// cache when fresh. An empty url or any fetch failure yields an empty
// string: callers treat missing context as acceptable degradation.
func (s *Snapshotter) Text(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	s.mu.Lock()
	if cached, ok := s.cache[url]; ok && time.Since(cached.fetchedAt) < s.ttl {
		s.mu.Unlock()
		return cached.text
	}
	s.mu.Unlock()

	text := s.snapshot(ctx, url)

	s.mu.Lock()
	s.cache[url] = cachedSnapshot{text: text, fetchedAt: time.Now()}
	s.mu.Unlock()

	return text
}

func (s *Snapshotter) snapshot(ctx context.Context, url string) string {
	result, err := fetch.URL(ctx, url, s.options)
	if err != nil {
		if s.verbose {
			log.Printf("[PORTAL] fetch failed for %s: %v", url, err)
		}
		return ""
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.DefaultTextSelectors())
	if err != nil {
		if s.verbose {
			log.Printf("[PORTAL] extraction failed for %s: %v", url, err)
		}
		return ""
	}

	// SPA portals serve an empty shell to plain HTTP; render with the
	// headless browser when available.
	if s.useBrowser && fetch.ShouldUseBrowser(text) {
		html, err := fetch.WithBrowser(ctx, url, s.options.Timeout, s.verbose)
		if err != nil {
			if s.verbose {
				log.Printf("[PORTAL] browser rendering failed for %s: %v", url, err)
			}
			return truncate(text)
		}
		rendered, err := fetch.ExtractMainText(html, fetch.DefaultTextSelectors())
		if err == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return truncate(text)
}

// truncate cuts text to MaxExcerptLength bytes, backing up to the nearest
// rune boundary so the excerpt stays valid UTF-8.
func truncate(text string) string {
	if len(text) <= MaxExcerptLength {
		return text
	}
	cut := MaxExcerptLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
