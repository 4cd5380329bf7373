package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// Cosmetic delays carried over from the original flows. They are pure
// scheduling; the logical transitions do not depend on their length.
const (
	logoutDelay = 1500 * time.Millisecond
	reloadDelay = 3 * time.Second
)

// CollaboratorDirectory answers whether an email has delegated access.
type CollaboratorDirectory interface {
	Contains(email string) bool
}

// Gate is the session/account state machine: Unauthenticated until a
// login or signup succeeds, then Authenticated with a role. At most one
// owner credential set exists locally; collaborators share one fixed
// secret.
type Gate struct {
	store     storage.Store
	log       *activity.Logger
	notifier  notify.Notifier
	verifier  Verifier
	scheduler common.Scheduler
	directory CollaboratorDirectory
	onWipe    func()
	users     map[string]model.User
	current   *model.User
}

// Option customizes a Gate.
type Option func(*Gate)

// WithScheduler overrides the delay scheduler, for tests.
func WithScheduler(s common.Scheduler) Option {
	return func(g *Gate) { g.scheduler = s }
}

// WithOnWipe registers the callback fired (after the cosmetic reload
// delay) once account deletion has wiped the store.
func WithOnWipe(fn func()) Option {
	return func(g *Gate) { g.onWipe = fn }
}

// NewGate loads the registered-users record and any persisted session.
func NewGate(store storage.Store, log *activity.Logger, notifier notify.Notifier, verifier Verifier, directory CollaboratorDirectory, opts ...Option) *Gate {
	g := &Gate{
		store:     store,
		log:       log,
		notifier:  notifier,
		verifier:  verifier,
		scheduler: common.TimerScheduler{},
		directory: directory,
		onWipe:    func() {},
		users:     make(map[string]model.User),
	}
	for _, opt := range opts {
		opt(g)
	}

	store.Get(storage.KeyUsers, &g.users)
	if g.users == nil {
		g.users = make(map[string]model.User)
	}

	var session model.User
	if store.Get(storage.KeyAuthUser, &session) && session.Email != "" {
		g.current = &session
	}
	return g
}

// IsAuthenticated reports whether a session identity is established.
func (g *Gate) IsAuthenticated() bool {
	return g.current != nil
}

// CurrentUser returns the session identity, or nil when unauthenticated.
func (g *Gate) CurrentUser() *model.User {
	if g.current == nil {
		return nil
	}
	user := *g.current
	return &user
}

// ActorName returns the session user's name for log entries, or Unknown.
func (g *Gate) ActorName() string {
	if g.current == nil {
		return "Unknown"
	}
	return g.current.Name
}

// Login establishes a session as owner (exact email+password match
// against the registered-users record) or as collaborator (registered
// email plus the shared secret). The failure notice deliberately does
// not reveal which field was wrong.
func (g *Gate) Login(email, password string) (model.User, error) {
	var user model.User
	switch {
	case g.matchOwner(email, password, &user):
		// user populated by matchOwner.
	case g.directory.Contains(email) && g.verifier.VerifyCollaborator(password):
		user = model.User{
			Name:  strings.SplitN(email, "@", 2)[0],
			Email: email,
			Role:  model.RoleCollaborator,
		}
	default:
		g.notifier.Notify("Invalid email or password.", notify.Error)
		return model.User{}, common.ErrInvalidCredentials
	}

	g.establish(user)
	return user, nil
}

// Signup registers a new owner record and immediately logs it in.
func (g *Gate) Signup(name, email, password, confirmPassword string) (model.User, error) {
	if password != confirmPassword {
		g.notifier.Notify("Passwords do not match.", notify.Warning)
		return model.User{}, fmt.Errorf("signup: %w", common.ErrInvalidInput)
	}
	if len(password) < 6 {
		g.notifier.Notify("Password must be at least 6 characters long.", notify.Warning)
		return model.User{}, fmt.Errorf("signup: %w", common.ErrInvalidInput)
	}
	if _, exists := g.users[email]; exists {
		g.notifier.Notify("An account with this email already exists.", notify.Error)
		return model.User{}, common.ErrDuplicateEntry
	}

	user := model.User{Name: name, Email: email, Password: password, Role: model.RoleOwner}
	g.users[email] = user
	g.store.Set(storage.KeyUsers, g.users)

	g.establish(user)
	g.log.Record("Account Created", fmt.Sprintf("New account registered for %s.", email), "")
	return user, nil
}

// Logout logs the action and shows the notice immediately; the session
// identity clears only after the cosmetic delay. The order is fixed:
// log, notify, then clear.
func (g *Gate) Logout() {
	g.log.Record("Logout", "session has ended", g.ActorName())
	g.notifier.Notify("Logging out...", notify.Info)

	g.scheduler.After(logoutDelay, func() {
		g.store.Remove(storage.KeyAuthUser)
		g.current = nil
	})
}

// DeleteAccount runs the strongest step-up confirmation, then logs the
// deletion, wipes every persisted collection, and schedules the full
// state reset. Any step-up mismatch performs zero mutation.
func (g *Gate) DeleteAccount(req StepUpRequest) error {
	if err := g.VerifyStepUp(ActionDeleteAccount, req); err != nil {
		return err
	}

	g.log.Record("Account Deleted", "user has deleted their account and all data", g.ActorName())
	g.store.Wipe()
	g.notifier.Notify("Account and all data successfully deleted. The application will now reload.", notify.Success)

	g.scheduler.After(reloadDelay, func() {
		g.current = nil
		g.users = make(map[string]model.User)
		g.onWipe()
	})
	return nil
}

// ResetCollaboratorPassword only logs the intent and notifies.
// Collaborators share one fixed secret, so there is no credential to
// reset; this is a deliberate mock limitation.
func (g *Gate) ResetCollaboratorPassword(email string) {
	g.log.Record("Collaborator Password Reset",
		fmt.Sprintf("password reset initiated for: %s", email),
		g.ActorName())
	g.notifier.Notify(fmt.Sprintf("Password reset link sent to %s.", email), notify.Info)
}

// UpdateIdentity renames the session identity after a profile update and
// re-persists the session record. No-op when unauthenticated.
func (g *Gate) UpdateIdentity(name, email string) {
	if g.current == nil {
		return
	}
	if name != "" {
		g.current.Name = name
	}
	if email != "" {
		g.current.Email = email
	}
	g.store.Set(storage.KeyAuthUser, *g.current)
}

func (g *Gate) matchOwner(email, password string, out *model.User) bool {
	for _, u := range g.users {
		if u.Email == email && u.Password == password {
			*out = u
			out.Role = model.RoleOwner
			return true
		}
	}
	return false
}

// establish persists the session identity, logs the login and shows the
// welcome notice.
func (g *Gate) establish(user model.User) {
	g.store.Set(storage.KeyAuthUser, user)
	g.current = &user

	g.log.Record("Login", "session started", user.Name)
	g.notifier.Notify(fmt.Sprintf("Welcome back, %s!", user.Name), notify.Success)
}
