package locfetch

import (
	"encoding/json"
	"testing"
	"time"
)

func testPayload() Payload {
	return Payload{
		"general": {
			"hello":   "Hi",
			"welcome": "Welcome, {name}!",
		},
		"errors": {
			"not_found": "Page not found",
		},
	}
}

func TestRecord_Identity(t *testing.T) {
	rec := NewRecord("API", "En", testPayload())

	if rec.Platform() != "API" {
		t.Errorf("Expected platform 'API', got %q", rec.Platform())
	}
	if rec.Language() != "En" {
		t.Errorf("Expected language 'En', got %q", rec.Language())
	}
	if rec.Key() != "api_en" {
		t.Errorf("Expected key 'api_en', got %q", rec.Key())
	}
}

func TestRecord_IsOutdated_FreshRecord(t *testing.T) {
	rec := NewRecord("api", "en", testPayload())

	if rec.IsOutdated(60 * time.Minute) {
		t.Error("Fresh record should not be outdated")
	}
}

func TestRecord_IsOutdated_OldRecord(t *testing.T) {
	rec := newRecordAt("api", "en", testPayload(), time.Now().Add(-2*time.Hour))

	if !rec.IsOutdated(60 * time.Minute) {
		t.Error("Two-hour-old record should be outdated with a 60m TTL")
	}
	if rec.IsOutdated(3 * time.Hour) {
		t.Error("Two-hour-old record should not be outdated with a 3h TTL")
	}
}

func TestRecord_IsOutdated_ZeroTTL(t *testing.T) {
	rec := newRecordAt("api", "en", testPayload(), time.Now().Add(-24*time.Hour))

	if rec.IsOutdated(0) {
		t.Error("Records should never expire with a zero TTL")
	}
}

func TestRecord_Extract(t *testing.T) {
	rec := NewRecord("api", "en", testPayload())

	if got := rec.Extract("general", "hello"); got != "Hi" {
		t.Errorf("Expected 'Hi', got %q", got)
	}
}

func TestRecord_Extract_Fallback(t *testing.T) {
	rec := NewRecord("api", "en", testPayload())

	tests := []struct {
		section, key string
	}{
		{"general", "missing"},
		{"missing", "hello"},
		{"missing", "missing"},
	}

	for _, tt := range tests {
		want := tt.section + "." + tt.key
		if got := rec.Extract(tt.section, tt.key); got != want {
			t.Errorf("Extract(%q, %q) = %q, want %q", tt.section, tt.key, got, want)
		}
	}
}

func TestRecord_Section(t *testing.T) {
	rec := NewRecord("api", "en", testPayload())

	sec := rec.Section("general")
	if sec == nil {
		t.Fatal("Expected section 'general'")
	}
	if sec["hello"] != "Hi" {
		t.Errorf("Expected 'Hi', got %q", sec["hello"])
	}

	if rec.Section("missing") != nil {
		t.Error("Expected nil for missing section")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	rec := NewRecord("Web", "DA", testPayload())

	data, err := json.Marshal(rec.Snapshot())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	restored, err := snap.Record()
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if restored.Platform() != "Web" || restored.Language() != "DA" {
		t.Errorf("Identity changed: %s/%s", restored.Platform(), restored.Language())
	}
	if got := restored.Extract("general", "hello"); got != "Hi" {
		t.Errorf("Payload changed: got %q", got)
	}

	// RFC3339 keeps second precision.
	diff := rec.FetchedAt().Sub(restored.FetchedAt())
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Errorf("Timestamp drifted by %v", diff)
	}
}

func TestSnapshot_InvalidTimestamp(t *testing.T) {
	snap := Snapshot{
		Platform:  "api",
		Language:  "en",
		Payload:   testPayload(),
		FetchedAt: "not-a-time",
	}

	if _, err := snap.Record(); err == nil {
		t.Error("Expected error for invalid timestamp")
	}
}
