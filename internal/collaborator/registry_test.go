package collaborator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

type registryFixture struct {
	registry *Registry
	store    *storage.MemoryStore
	log      *activity.Logger
	notifier *notify.Recorder
}

func createTestRegistry(t *testing.T) *registryFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	log := activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{}))
	notifier := &notify.Recorder{}
	r := NewRegistry(store, log, notifier)
	return &registryFixture{registry: r, store: store, log: log, notifier: notifier}
}

func TestRegistry_Add(t *testing.T) {
	fix := createTestRegistry(t)

	require.NoError(t, fix.registry.Add("bob@example.com"))

	assert.True(t, fix.registry.Contains("bob@example.com"))
	assert.Equal(t, "Collaborator added successfully!", fix.notifier.Last().Message)

	entries := fix.log.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Collaborator Added", entries[0].Type)
}

func TestRegistry_AddRejectsInvalidShape(t *testing.T) {
	tests := []string{"", "   ", "bob", "bob@", "bob@example", "@example.com", "bob example@x.com"}

	for _, email := range tests {
		t.Run("invalid "+email, func(t *testing.T) {
			fix := createTestRegistry(t)

			err := fix.registry.Add(email)
			require.Error(t, err)
			assert.Empty(t, fix.registry.Emails())
			assert.Equal(t, 0, fix.log.Len(), "rejections must not log")
			assert.Equal(t, "Please enter a valid email address.", fix.notifier.Last().Message)
			assert.Equal(t, notify.Warning, fix.notifier.Last().Severity)
		})
	}
}

func TestRegistry_AddRejectsDuplicate(t *testing.T) {
	fix := createTestRegistry(t)

	require.NoError(t, fix.registry.Add("bob@example.com"))
	err := fix.registry.Add("bob@example.com")
	require.Error(t, err)

	assert.Len(t, fix.registry.Emails(), 1)
	assert.Equal(t, "This collaborator already exists.", fix.notifier.Last().Message)
}

func TestRegistry_RemoveIsUnconditional(t *testing.T) {
	fix := createTestRegistry(t)

	require.NoError(t, fix.registry.Add("bob@example.com"))
	fix.registry.Remove("bob@example.com")
	assert.False(t, fix.registry.Contains("bob@example.com"))

	// Removing an unknown email still logs and notifies.
	logsBefore := fix.log.Len()
	fix.registry.Remove("nobody@example.com")
	assert.Equal(t, logsBefore+1, fix.log.Len())
	assert.Equal(t, "Collaborator removed.", fix.notifier.Last().Message)
}

func TestRegistry_PersistsAcrossInstances(t *testing.T) {
	store := storage.NewMemoryStore()
	log := activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{}))

	first := NewRegistry(store, log, notify.Discard)
	require.NoError(t, first.Add("bob@example.com"))

	second := NewRegistry(store, log, notify.Discard)
	assert.True(t, second.Contains("bob@example.com"))
}
