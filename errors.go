package locfetch

import "fmt"

// FetchError indicates the remote translation service could not be
// reached or returned an unusable response.
type FetchError struct {
	Platform string
	Language string
	Cause    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching translations for %s/%s: %v", e.Platform, e.Language, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache-tier failure. Cache errors are logged
// and swallowed by the client; they never fail a lookup on their own.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// SuppressedError indicates the remote service is inside its failure
// suppression window and no cached fallback entry exists.
type SuppressedError struct {
	Platform  string
	Language  string
	LastError string // description of the failure that started the window
}

func (e *SuppressedError) Error() string {
	return fmt.Sprintf("translation service unavailable for %s/%s (suppressed after: %s)",
		e.Platform, e.Language, e.LastError)
}

// ConfigError indicates invalid or missing startup configuration.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
