// Package audit records admin operations as structured entries, both to the
// process log and to an in-memory trail served by the admin audit endpoint.
package audit

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Entry statuses.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Entry is a single audit record.
type Entry struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor"`
	Target    string            `json:"target"`
	Status    string            `json:"status"`
	IPAddress string            `json:"ipAddress,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Trail holds the bounded in-memory audit log. Entries also go to the
// structured process log so the trail survives in log aggregation even
// though the in-memory copy does not survive restarts.
type Trail struct {
	mu      sync.Mutex
	entries []Entry
	max     int
	logger  zerolog.Logger
	now     func() time.Time
}

// NewTrail creates a trail retaining at most max entries (oldest dropped).
func NewTrail(max int, logger zerolog.Logger) *Trail {
	if max <= 0 {
		max = 500
	}
	return &Trail{
		max:    max,
		logger: logger.With().Str("component", "audit").Logger(),
		now:    time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (t *Trail) WithNow(now func() time.Time) *Trail {
	t.now = now
	return t
}

// Record appends an entry, filling ID and timestamp when absent, and writes
// it to the structured log.
func (t *Trail) Record(entry Entry) Entry {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = t.now().UTC()
	}
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if entry.Status == "" {
		entry.Status = StatusSuccess
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	if len(t.entries) > t.max {
		t.entries = t.entries[len(t.entries)-t.max:]
	}
	t.mu.Unlock()

	t.logger.Info().
		Str("action", entry.Action).
		Str("actor", entry.Actor).
		Str("target", entry.Target).
		Str("status", entry.Status).
		Str("ip", entry.IPAddress).
		Msg("audit entry")

	return entry
}

// Success records a successful admin operation.
func (t *Trail) Success(action, actor, target, ip string, metadata map[string]string) Entry {
	return t.Record(Entry{Action: action, Actor: actor, Target: target, Status: StatusSuccess, IPAddress: ip, Metadata: metadata})
}

// Warning records an operation worth flagging, e.g. a role change.
func (t *Trail) Warning(action, actor, target, ip string, metadata map[string]string) Entry {
	return t.Record(Entry{Action: action, Actor: actor, Target: target, Status: StatusWarning, IPAddress: ip, Metadata: metadata})
}

// Failure records a failed admin operation.
func (t *Trail) Failure(action, actor, target, ip string, metadata map[string]string) Entry {
	return t.Record(Entry{Action: action, Actor: actor, Target: target, Status: StatusError, IPAddress: ip, Metadata: metadata})
}

// List returns the trail newest-first.
func (t *Trail) List() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	for i, entry := range t.entries {
		out[len(t.entries)-1-i] = entry
	}
	return out
}
