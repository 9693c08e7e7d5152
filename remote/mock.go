package remote

import (
	"context"
	"fmt"

	"github.com/ZaguanLabs/locfetch"
)

// MockFetcher is a mock translation service for testing. Payloads are
// keyed by locfetch.CacheKey(platform, language).
type MockFetcher struct {
	Payloads     map[string]locfetch.Payload // Canned payloads per cache key
	Err          error                       // When set, every fetch fails with this error
	CallCount    int                         // Number of times FetchTranslation was called
	LastPlatform string                      // Platform of the last request
	LastLanguage string                      // Language of the last request
}

// NewMockFetcher creates a mock fetcher with a default payload for
// the api/en pair.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Payloads: map[string]locfetch.Payload{
			"api_en": {
				"general": {
					"hello":   "Hi",
					"welcome": "Welcome, {name}!",
				},
			},
		},
	}
}

// FetchTranslation returns the canned payload for the pair.
func (m *MockFetcher) FetchTranslation(ctx context.Context, platform, language string) (*locfetch.Record, error) {
	m.CallCount++
	m.LastPlatform = platform
	m.LastLanguage = language

	if m.Err != nil {
		return nil, m.Err
	}

	payload, ok := m.Payloads[locfetch.CacheKey(platform, language)]
	if !ok {
		return nil, fmt.Errorf("no translations for %s/%s", platform, language)
	}

	return locfetch.NewRecord(platform, language, payload), nil
}

// Reset resets the call count and last request.
func (m *MockFetcher) Reset() {
	m.CallCount = 0
	m.LastPlatform = ""
	m.LastLanguage = ""
}

// Verify MockFetcher implements Fetcher
var _ Fetcher = (*MockFetcher)(nil)
