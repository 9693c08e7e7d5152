// Package locfetch provides a caching translation-retrieval client.
package locfetch

import (
	"time"
)

// Payload is the nested translation document for one platform+language
// pair: section name -> translation key -> localized string.
type Payload map[string]map[string]string

// Record is an immutable snapshot of one platform+language translation
// payload plus the time it was fetched. Every fetch produces a new
// Record; records are never updated in place.
type Record struct {
	platform  string
	language  string
	payload   Payload
	fetchedAt time.Time
}

// NewRecord creates a Record with the fetch time set to now.
func NewRecord(platform, language string, payload Payload) *Record {
	return newRecordAt(platform, language, payload, time.Now())
}

// newRecordAt creates a Record with an explicit fetch time. Used when
// reconstructing from a Snapshot.
func newRecordAt(platform, language string, payload Payload, fetchedAt time.Time) *Record {
	return &Record{
		platform:  platform,
		language:  language,
		payload:   payload,
		fetchedAt: fetchedAt,
	}
}

// Platform returns the platform the record was fetched for.
func (r *Record) Platform() string {
	return r.platform
}

// Language returns the language the record was fetched for.
func (r *Record) Language() string {
	return r.language
}

// FetchedAt returns the time the record was fetched.
func (r *Record) FetchedAt() time.Time {
	return r.fetchedAt
}

// Key returns the cache key the record is stored under.
func (r *Record) Key() string {
	return CacheKey(r.platform, r.language)
}

// IsOutdated reports whether the record is older than maxAge.
// A maxAge of 0 or less means records never expire.
func (r *Record) IsOutdated(maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return time.Since(r.fetchedAt) > maxAge
}

// Extract returns the localized string at payload[section][key].
// When the section or key is missing it returns "section.key" so a
// broken lookup degrades to a visible placeholder instead of an error.
func (r *Record) Extract(section, key string) string {
	if sec, ok := r.payload[section]; ok {
		if val, ok := sec[key]; ok {
			return val
		}
	}
	return section + "." + key
}

// Section returns the sub-document for a section, or nil if the
// section is absent.
func (r *Record) Section(section string) map[string]string {
	return r.payload[section]
}

// Snapshot returns the serializable form of the record.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		Platform:  r.platform,
		Language:  r.language,
		Payload:   r.payload,
		FetchedAt: r.fetchedAt.UTC().Format(time.RFC3339),
	}
}

// Snapshot is the transportable form of a Record, suitable for the
// persistent cache tier.
type Snapshot struct {
	Platform  string  `json:"platform"`
	Language  string  `json:"language"`
	Payload   Payload `json:"payload"`
	FetchedAt string  `json:"fetched_at"`
}

// Record reconstructs the Record the snapshot was taken from.
func (s Snapshot) Record() (*Record, error) {
	fetchedAt, err := time.Parse(time.RFC3339, s.FetchedAt)
	if err != nil {
		return nil, &CacheError{Message: "invalid snapshot timestamp", Cause: err}
	}
	return newRecordAt(s.Platform, s.Language, s.Payload, fetchedAt), nil
}
