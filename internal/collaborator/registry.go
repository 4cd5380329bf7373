// Package collaborator maintains the registry of delegated-access email
// identities.
package collaborator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// emailPattern is the coarse shape check: something before an @, and a
// domain with a dot.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Registry is the set of collaborator emails. Collaborators carry no
// individual credentials; the email is all that is stored.
type Registry struct {
	store    storage.Store
	log      *activity.Logger
	notifier notify.Notifier
	actor    func() string
	emails   []string
}

// Option customizes a Registry.
type Option func(*Registry)

// WithActor sets the provider for the acting user's name used in log
// entries.
func WithActor(actor func() string) Option {
	return func(r *Registry) { r.actor = actor }
}

// NewRegistry loads the persisted collaborator list.
func NewRegistry(store storage.Store, log *activity.Logger, notifier notify.Notifier, opts ...Option) *Registry {
	r := &Registry{
		store:    store,
		log:      log,
		notifier: notifier,
		actor:    func() string { return "Unknown" },
	}
	for _, opt := range opts {
		opt(r)
	}

	store.Get(storage.KeyCollaborators, &r.emails)
	return r
}

// Add validates the email shape, rejects duplicates, and appends. Both
// rejections surface as warning notices with no mutation.
func (r *Registry) Add(email string) error {
	if strings.TrimSpace(email) == "" || !emailPattern.MatchString(email) {
		r.notifier.Notify("Please enter a valid email address.", notify.Warning)
		return fmt.Errorf("email %q: %w", email, common.ErrInvalidInput)
	}
	if r.Contains(email) {
		r.notifier.Notify("This collaborator already exists.", notify.Warning)
		return common.ErrDuplicateEntry
	}

	r.emails = append(r.emails, email)
	r.persist()

	r.log.Record("Collaborator Added",
		fmt.Sprintf("added collaborator: %s", email),
		r.actor())
	r.notifier.Notify("Collaborator added successfully!", notify.Success)
	return nil
}

// Remove deletes the email from the registry. Removal is unconditional:
// it logs and notifies whether or not the email was present.
func (r *Registry) Remove(email string) {
	kept := r.emails[:0:0]
	for _, e := range r.emails {
		if e != email {
			kept = append(kept, e)
		}
	}
	r.emails = kept
	r.persist()

	r.log.Record("Collaborator Removed",
		fmt.Sprintf("removed collaborator: %s", email),
		r.actor())
	r.notifier.Notify("Collaborator removed.", notify.Success)
}

// Contains reports whether the email is registered.
func (r *Registry) Contains(email string) bool {
	for _, e := range r.emails {
		if e == email {
			return true
		}
	}
	return false
}

// Emails returns a snapshot of the registry in insertion order.
func (r *Registry) Emails() []string {
	out := make([]string, len(r.emails))
	copy(out, r.emails)
	return out
}

// Reload drops in-memory state and re-reads the persisted registry. Used
// after a full data wipe.
func (r *Registry) Reload() {
	r.emails = nil
	r.store.Get(storage.KeyCollaborators, &r.emails)
}

func (r *Registry) persist() {
	if r.emails == nil {
		r.store.Set(storage.KeyCollaborators, []string{})
		return
	}
	r.store.Set(storage.KeyCollaborators, r.emails)
}
