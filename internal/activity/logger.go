// Package activity maintains the append-only, size-capped log of user
// actions.
package activity

import (
	"fmt"
	"time"

	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// MaxEntries is the cap on retained log entries; the oldest are evicted
// on overflow.
const MaxEntries = 200

// Logger records user actions. Recording never fails outward: persistence
// faults are swallowed at the store boundary and the in-memory log keeps
// going.
type Logger struct {
	store   storage.Store
	now     func() time.Time
	device  DeviceInfo
	entries []model.ActivityEntry
	lastID  int64
}

// Option customizes a Logger.
type Option func(*Logger)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithDevice overrides environment detection, for tests.
func WithDevice(info DeviceInfo) Option {
	return func(l *Logger) { l.device = info }
}

// NewLogger loads any persisted entries and returns a ready logger.
func NewLogger(store storage.Store, opts ...Option) *Logger {
	l := &Logger{
		store:  store,
		now:    time.Now,
		device: DetectDevice(),
	}
	for _, opt := range opts {
		opt(l)
	}

	store.Get(storage.KeyLogs, &l.entries)
	if len(l.entries) > 0 {
		l.lastID = l.entries[0].ID
	}
	return l
}

// Record inserts a new entry at the head of the log, truncates to the cap
// and persists. The actor's name is prepended into the details text; an
// empty actor records as Anonymous.
func (l *Logger) Record(action, details, actor string) {
	if actor == "" {
		actor = "Anonymous"
	}

	now := l.now()
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	entry := model.ActivityEntry{
		ID:        id,
		Timestamp: now,
		Type:      action,
		Details:   fmt.Sprintf("User: %s %s", actor, details),
		Browser:   l.device.Browser,
		OS:        l.device.OS,
		Device:    l.device.Device,
	}

	l.entries = append([]model.ActivityEntry{entry}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}

	l.store.Set(storage.KeyLogs, l.entries)
}

// Entries returns a snapshot of the log, newest first.
func (l *Logger) Entries() []model.ActivityEntry {
	out := make([]model.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of retained entries.
func (l *Logger) Len() int {
	return len(l.entries)
}

// Clear removes all entries, then records the clearing action itself, so
// the log is never empty after a clear through the normal path.
func (l *Logger) Clear() {
	l.entries = nil
	l.store.Remove(storage.KeyLogs)
	l.Record("Logs Cleared", "All activity logs have been deleted.", "System")
}

// Reload drops in-memory state and re-reads the persisted log. Used after
// a full data wipe.
func (l *Logger) Reload() {
	l.entries = nil
	l.lastID = 0
	l.store.Get(storage.KeyLogs, &l.entries)
	if len(l.entries) > 0 {
		l.lastID = l.entries[0].ID
	}
}
