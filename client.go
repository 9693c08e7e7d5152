package locfetch

import (
	"context"
	"log"
	"os"
	"time"
)

// Default configuration values, overridable per client.
const (
	DefaultPlatform          = "api"
	DefaultLanguage          = "en"
	DefaultTTL               = 60 * time.Minute
	DefaultSuppressionWindow = 30 * time.Second
)

var defaultLogger = log.New(os.Stderr, "[locfetch] ", log.LstdFlags)

// Fetcher is the interface for remote translation backends.
type Fetcher interface {
	// FetchTranslation retrieves the full translation payload for a
	// platform+language pair from the remote service.
	FetchTranslation(ctx context.Context, platform, language string) (*Record, error)
}

// Client is the caching translation-retrieval client. It resolves
// translation records through memory, persistent cache and remote
// fetch, in that order, applying expiration and failure suppression.
type Client struct {
	fetcher         Fetcher
	cache           *TwoTier
	attempts        *AttemptTracker
	defaultPlatform string
	defaultLanguage string
	logger          *log.Logger

	store  Store
	ttl    time.Duration
	window time.Duration
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithStore sets the persistent cache tier. Without it the client
// caches in memory only.
func WithStore(store Store) ClientOption {
	return func(c *Client) {
		c.store = store
	}
}

// WithTTL sets how long a fetched record stays fresh.
// 0 or less disables expiration.
func WithTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.ttl = ttl
	}
}

// WithSuppressionWindow sets how long remote fetches are skipped for a
// key after a failure. 0 or less disables suppression.
func WithSuppressionWindow(window time.Duration) ClientOption {
	return func(c *Client) {
		c.window = window
	}
}

// WithDefaults sets the platform and language used when a Query leaves
// them empty.
func WithDefaults(platform, language string) ClientOption {
	return func(c *Client) {
		if platform != "" {
			c.defaultPlatform = platform
		}
		if language != "" {
			c.defaultLanguage = language
		}
	}
}

// WithLogger sets the logger used for swallowed cache failures.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client backed by the given remote fetcher.
func NewClient(fetcher Fetcher, opts ...ClientOption) *Client {
	c := &Client{
		fetcher:         fetcher,
		defaultPlatform: DefaultPlatform,
		defaultLanguage: DefaultLanguage,
		logger:          defaultLogger,
		ttl:             DefaultTTL,
		window:          DefaultSuppressionWindow,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.cache = NewTwoTier(c.store, c.ttl, c.logger)
	c.attempts = NewAttemptTracker(c.window)

	return c
}

// Resolve returns the translation record for a platform+language pair,
// consulting the memory tier, then the persistent tier, then the
// remote service.
//
// While the key is inside its suppression window the remote service is
// not contacted at all: the persistent tier is consulted even for
// stale entries, and if none exists a SuppressedError is returned.
// The memory tier is deliberately not part of that fallback.
func (c *Client) Resolve(ctx context.Context, platform, language string) (*Record, error) {
	platform, language = c.applyDefaults(platform, language)
	key := CacheKey(platform, language)

	if c.attempts.ShouldAvoidRetry(key) {
		if rec, ok := c.cache.StaleFromStore(key); ok {
			c.logger.Printf("serving stale cache for %s while upstream is suppressed", key)
			return rec, nil
		}
		attempt, _ := c.attempts.LastFailure(key)
		return nil, &SuppressedError{
			Platform:  platform,
			Language:  language,
			LastError: attempt.Reason,
		}
	}

	if rec, ok := c.cache.FromMemory(key); ok {
		return rec, nil
	}

	if rec, ok := c.cache.FromStore(key); ok {
		return rec, nil
	}

	rec, err := c.fetcher.FetchTranslation(ctx, platform, language)
	if err != nil {
		c.attempts.RecordFailure(key, err)
		return nil, &FetchError{Platform: platform, Language: language, Cause: err}
	}

	c.cache.Put(rec)
	c.attempts.RecordSuccess(key)

	return rec, nil
}

// Query identifies one translation lookup. Empty Platform and Language
// fall back to the client defaults; Replacements may be nil.
type Query struct {
	Platform     string
	Language     string
	Section      string
	Key          string
	Replacements map[string]string
}

// Get resolves a single localized string. It never fails: any resolve
// error degrades to the "section.key" fallback string, and placeholder
// replacement is applied either way.
func (c *Client) Get(ctx context.Context, q Query) string {
	result := q.Section + "." + q.Key

	rec, err := c.Resolve(ctx, q.Platform, q.Language)
	if err != nil {
		c.logger.Printf("lookup %s.%s degraded to fallback: %v", q.Section, q.Key, err)
	} else {
		result = rec.Extract(q.Section, q.Key)
	}

	return Replace(result, q.Replacements)
}

// Lookup resolves a localized string using the client defaults for
// platform and language.
func (c *Client) Lookup(ctx context.Context, section, key string) string {
	return c.Get(ctx, Query{Section: section, Key: key})
}

// Section resolves the raw sub-document for a section. Unlike Get this
// surfaces resolve errors; a missing section yields a nil map.
func (c *Client) Section(ctx context.Context, q Query) (map[string]string, error) {
	rec, err := c.Resolve(ctx, q.Platform, q.Language)
	if err != nil {
		return nil, err
	}
	return rec.Section(q.Section), nil
}

// DefaultPlatform returns the platform used when a Query leaves it empty.
func (c *Client) DefaultPlatform() string {
	return c.defaultPlatform
}

// DefaultLanguage returns the language used when a Query leaves it empty.
func (c *Client) DefaultLanguage() string {
	return c.defaultLanguage
}

// Attempts returns the attempt tracker for inspection.
func (c *Client) Attempts() *AttemptTracker {
	return c.attempts
}

// Cache returns the two-tier cache for inspection.
func (c *Client) Cache() *TwoTier {
	return c.cache
}

func (c *Client) applyDefaults(platform, language string) (string, string) {
	if platform == "" {
		platform = c.defaultPlatform
	}
	if language == "" {
		language = c.defaultLanguage
	}
	return platform, language
}
