// Package app wires the application together: one explicit state root
// owning every collection, with persistence, logging and notification
// injected as capabilities.
package app

import (
	"fmt"
	"time"

	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/category"
	"github.com/wolferonic/swiftbudget/internal/collaborator"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/ledger"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/profile"
	"github.com/wolferonic/swiftbudget/internal/session"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// App is the root controller. All mutations flow through its services,
// each of which persists its own collection and emits activity entries
// and notices.
type App struct {
	Store         storage.Store
	Log           *activity.Logger
	Notifier      notify.Notifier
	Ledger        *ledger.Ledger
	Categories    *category.Manager
	Collaborators *collaborator.Registry
	Gate          *session.Gate
	Profile       *profile.Service

	theme string
}

// Options configure the capabilities an App runs on. Zero values fall
// back to production defaults.
type Options struct {
	Verifier  session.Verifier
	Scheduler common.Scheduler
	Now       func() time.Time
}

// New assembles the full application over the given store.
func New(store storage.Store, notifier notify.Notifier, opts Options) *App {
	if opts.Verifier == nil {
		opts.Verifier = session.DefaultVerifier()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = common.TimerScheduler{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &App{Store: store, Notifier: notifier}

	// The actor closure resolves lazily so every service can name the
	// session user active at call time.
	actor := func() string { return a.Gate.ActorName() }

	a.Log = activity.NewLogger(store, activity.WithNow(opts.Now))
	a.Collaborators = collaborator.NewRegistry(store, a.Log, notifier,
		collaborator.WithActor(actor))
	a.Gate = session.NewGate(store, a.Log, notifier, opts.Verifier, a.Collaborators,
		session.WithScheduler(opts.Scheduler),
		session.WithOnWipe(a.reset))
	a.Ledger = ledger.New(store, a.Log, notifier,
		ledger.WithNow(opts.Now),
		ledger.WithActor(actor))
	a.Categories = category.NewManager(store, a.Log, notifier,
		category.WithActor(actor))

	var name, email string
	if user := a.Gate.CurrentUser(); user != nil {
		name, email = user.Name, user.Email
	}
	a.Profile = profile.NewService(store, a.Log, notifier, name, email,
		profile.WithActor(actor),
		profile.WithScheduler(opts.Scheduler))

	if !store.Get(storage.KeyTheme, &a.theme) || a.theme == "" {
		a.theme = "light"
	}

	return a
}

// Theme returns the persisted theme, light or dark.
func (a *App) Theme() string {
	return a.theme
}

// ToggleTheme flips between light and dark, persists and logs.
func (a *App) ToggleTheme() string {
	if a.theme == "light" {
		a.theme = "dark"
	} else {
		a.theme = "light"
	}
	a.Store.Set(storage.KeyTheme, a.theme)
	a.Log.Record("Theme Change", fmt.Sprintf("Theme changed to %s", a.theme), a.Gate.ActorName())
	return a.theme
}

// Login establishes a session and pulls the identity into the profile
// record, as the original session flow does.
func (a *App) Login(email, password string) (model.User, error) {
	user, err := a.Gate.Login(email, password)
	if err != nil {
		return model.User{}, err
	}
	a.Profile.SyncIdentity(user.Name, user.Email)
	return user, nil
}

// Signup registers a new owner and logs it in.
func (a *App) Signup(name, email, password, confirmPassword string) (model.User, error) {
	user, err := a.Gate.Signup(name, email, password, confirmPassword)
	if err != nil {
		return model.User{}, err
	}
	a.Profile.SyncIdentity(user.Name, user.Email)
	return user, nil
}

// UpdateProfile saves the profile and keeps the session identity record
// in step when the name or email changed.
func (a *App) UpdateProfile(next model.Profile) {
	prev := a.Profile.Profile()
	a.Profile.Update(next)

	if prev.Name != next.Name || prev.Email != next.Email {
		a.Gate.UpdateIdentity(next.Name, next.Email)
	}
}

// ClearRecords runs the clear-records step-up confirmation, then clears
// the period. A failed confirmation mutates nothing.
func (a *App) ClearRecords(period ledger.Period, req session.StepUpRequest) error {
	if err := a.requireOwner(); err != nil {
		return err
	}
	if err := a.Gate.VerifyStepUp(session.ActionClearRecords, req); err != nil {
		return err
	}
	return a.Ledger.Clear(period)
}

// LogEntries returns the activity log, newest first. The log is part of
// the owner-only surface: collaborators and signed-out users are
// refused.
func (a *App) LogEntries() ([]model.ActivityEntry, error) {
	if err := a.requireOwner(); err != nil {
		return nil, err
	}
	return a.Log.Entries(), nil
}

// ClearLogs runs the clear-logs step-up confirmation, then clears the
// activity log. The clear itself leaves one entry behind.
func (a *App) ClearLogs(req session.StepUpRequest) error {
	if err := a.requireOwner(); err != nil {
		return err
	}
	if err := a.Gate.VerifyStepUp(session.ActionClearLogs, req); err != nil {
		return err
	}
	a.Log.Clear()
	a.Notifier.Notify("Logs cleared successfully!", notify.Success)
	return nil
}

// DeleteAccount runs the strongest step-up confirmation, wipes every
// persisted collection and schedules the full state reset.
func (a *App) DeleteAccount(req session.StepUpRequest) error {
	if err := a.requireOwner(); err != nil {
		return err
	}
	return a.Gate.DeleteAccount(req)
}

// BudgetAlerts derives threshold alerts from the current ledger and
// budget map.
func (a *App) BudgetAlerts() []category.BudgetAlert {
	return category.BudgetAlerts(a.Ledger.Transactions(), a.Categories.Budgets())
}

// requireOwner gates the danger-zone actions collaborators cannot reach.
func (a *App) requireOwner() error {
	user := a.Gate.CurrentUser()
	if user == nil || user.Role != model.RoleOwner {
		a.Notifier.Notify("Only the account owner can perform this action.", notify.Error)
		return common.ErrNotAuthenticated
	}
	return nil
}

// reset rebuilds every service from the (now empty) store, restoring
// defaults. Equivalent to an app restart after account deletion.
func (a *App) reset() {
	a.Ledger.Reload()
	a.Categories.Reload()
	a.Collaborators.Reload()
	a.Log.Reload()
	a.Profile.Reload("", "")
	a.theme = "light"
}
