// Package profile manages the display/contact metadata persisted
// independently of the login credential.
package profile

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// uploadDelay simulates the round trip a real image upload would take.
const uploadDelay = 1 * time.Second

// Service owns the user profile record.
type Service struct {
	store     storage.Store
	log       *activity.Logger
	notifier  notify.Notifier
	scheduler common.Scheduler
	actor     func() string
	profile   model.Profile
}

// Option customizes a Service.
type Option func(*Service)

// WithActor sets the provider for the acting user's name used in log
// entries.
func WithActor(actor func() string) Option {
	return func(s *Service) { s.actor = actor }
}

// WithScheduler overrides the upload scheduler, for tests.
func WithScheduler(sched common.Scheduler) Option {
	return func(s *Service) { s.scheduler = sched }
}

// NewService loads the persisted profile, falling back to a default
// seeded from the given identity.
func NewService(store storage.Store, log *activity.Logger, notifier notify.Notifier, name, email string, opts ...Option) *Service {
	s := &Service{
		store:     store,
		log:       log,
		notifier:  notifier,
		scheduler: common.TimerScheduler{},
		actor:     func() string { return "Unknown" },
	}
	for _, opt := range opts {
		opt(s)
	}

	if !store.Get(storage.KeyProfile, &s.profile) {
		s.profile = model.DefaultProfile(name, email)
	}
	return s
}

// Profile returns the current profile record.
func (s *Service) Profile() model.Profile {
	return s.profile
}

// Update replaces the profile and logs which fields changed. The log
// entry names the changed fields; an update that changes nothing still
// notifies but records no entry.
func (s *Service) Update(next model.Profile) {
	var changes []string
	if s.profile.Name != next.Name {
		changes = append(changes, "Name")
	}
	if s.profile.Email != next.Email {
		changes = append(changes, "Email")
	}
	if s.profile.Phone != next.Phone {
		changes = append(changes, "Phone")
	}
	if s.profile.ProfileImageURL != next.ProfileImageURL {
		changes = append(changes, "Profile Picture")
	}

	s.profile = next
	s.store.Set(storage.KeyProfile, s.profile)

	if len(changes) > 0 {
		s.log.Record("Profile Updated",
			fmt.Sprintf("profile updated: %s", strings.Join(changes, ", ")),
			s.actor())
	}
	s.notifier.Notify("Profile updated successfully!", notify.Success)
}

// SyncIdentity overwrites the profile's name and email after a login,
// keeping the rest of the record.
func (s *Service) SyncIdentity(name, email string) {
	s.profile.Name = name
	s.profile.Email = email
	s.store.Set(storage.KeyProfile, s.profile)
}

// UploadImage simulates uploading a profile picture: after the fixed
// delay the callback receives the hosted URL. There is no cancellation
// and no real transfer.
func (s *Service) UploadImage(path string, done func(url string, err error)) {
	ext := filepath.Ext(path)
	if ext == "" {
		done("", fmt.Errorf("image path %q has no extension: %w", path, common.ErrInvalidInput))
		return
	}

	url := fmt.Sprintf("https://cdn.swiftbudget.app/uploads/%s%s", uuid.New(), ext)
	s.scheduler.After(uploadDelay, func() {
		done(url, nil)
	})
}

// Reload drops in-memory state and re-derives the profile from the
// store. Used after a full data wipe.
func (s *Service) Reload(name, email string) {
	s.profile = model.Profile{}
	if !s.store.Get(storage.KeyProfile, &s.profile) {
		s.profile = model.DefaultProfile(name, email)
	}
}
