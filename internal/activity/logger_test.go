package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

func createTestLogger(t *testing.T) (*Logger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	logger := NewLogger(store,
		WithNow(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }),
		WithDevice(DeviceInfo{Browser: "test", OS: "TestOS", Device: "test-host"}),
	)
	return logger, store
}

func TestLogger_Record(t *testing.T) {
	logger, store := createTestLogger(t)

	logger.Record("Add Transaction", "added expense: Coffee ($4.50)", "Alice")

	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Add Transaction", entries[0].Type)
	assert.Equal(t, "User: Alice added expense: Coffee ($4.50)", entries[0].Details)
	assert.Equal(t, "TestOS", entries[0].OS)

	var persisted []model.ActivityEntry
	require.True(t, store.Get(storage.KeyLogs, &persisted))
	assert.Len(t, persisted, 1)
}

func TestLogger_AnonymousActor(t *testing.T) {
	logger, _ := createTestLogger(t)

	logger.Record("Login", "session started", "")

	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "User: Anonymous session started", entries[0].Details)
}

func TestLogger_CapAndOrdering(t *testing.T) {
	logger, _ := createTestLogger(t)

	for i := 0; i < 250; i++ {
		logger.Record("Add Transaction", fmt.Sprintf("entry %d", i), "Alice")
	}

	entries := logger.Entries()
	require.Len(t, entries, MaxEntries)

	// Newest first: the last recorded entry leads, and the retained set is
	// the 200 most recent (entries 50..249).
	assert.Contains(t, entries[0].Details, "entry 249")
	assert.Contains(t, entries[MaxEntries-1].Details, "entry 50")

	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].ID, entries[i].ID, "ids must stay strictly descending")
	}
}

func TestLogger_UniqueIDsUnderRapidCalls(t *testing.T) {
	logger, _ := createTestLogger(t)

	// The fixed clock makes every UnixMilli identical; ids must still be
	// unique.
	seen := make(map[int64]bool)
	for i := 0; i < 20; i++ {
		logger.Record("Login", "session started", "Alice")
	}
	for _, e := range logger.Entries() {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}

func TestLogger_Clear(t *testing.T) {
	logger, _ := createTestLogger(t)

	logger.Record("Login", "session started", "Alice")
	logger.Record("Logout", "session has ended", "Alice")
	logger.Clear()

	// The clear itself is recorded, so the log is never truly empty.
	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Logs Cleared", entries[0].Type)
	assert.Equal(t, "User: System All activity logs have been deleted.", entries[0].Details)
}

func TestLogger_SwallowsPersistenceFaults(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailWrites = true
	logger := NewLogger(store, WithDevice(DeviceInfo{}))

	// Must not panic or error; the in-memory log still advances.
	logger.Record("Login", "session started", "Alice")
	assert.Equal(t, 1, logger.Len())
	assert.False(t, store.Has(storage.KeyLogs))
}

func TestLogger_LoadsPersistedEntries(t *testing.T) {
	store := storage.NewMemoryStore()
	first := NewLogger(store, WithDevice(DeviceInfo{}))
	first.Record("Login", "session started", "Alice")

	second := NewLogger(store, WithDevice(DeviceInfo{}))
	require.Equal(t, 1, second.Len())

	// New ids must not collide with loaded history.
	second.Record("Logout", "session has ended", "Alice")
	entries := second.Entries()
	assert.Greater(t, entries[0].ID, entries[1].ID)
}
