package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
)

// Navigation targets used by the manager. The Navigator decides what
// a path means for the hosting surface.
const (
	PathLogin     = "/auth/login"
	PathDashboard = "/dashboard"
)

var (
	// ErrValidation indicates a register/login attempt with an empty
	// email or password. No network call is made in this case.
	ErrValidation = errors.New("email and password are required")

	// ErrNoToken indicates a successful login response that carried no
	// usable access token. Nothing is persisted in this case.
	ErrNoToken = errors.New("no token returned")
)

// Navigator moves the hosting surface to a new path.
type Navigator interface {
	GoTo(path string)
}

// Notifier surfaces one-line messages to the user.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Manager owns the session lifecycle. The user is logged in exactly
// while a persisted access token exists; there are no other states.
// Every failed operation produces exactly one user-visible
// notification, and callers observe failures only as unchanged state
// plus the returned error.
type Manager struct {
	client   api.Client
	store    Store
	nav      Navigator
	notifier Notifier
	log      logging.Logger
}

// NewManager constructs a Manager bound to the given collaborators.
func NewManager(client api.Client, store Store, nav Navigator, notifier Notifier, log logging.Logger) *Manager {
	return &Manager{client: client, store: store, nav: nav, notifier: notifier, log: log}
}

func (m *Manager) validate(creds models.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		m.notifier.Warning("Please fill in all fields")
		return ErrValidation
	}
	return nil
}

// failureMessage extracts the backend-provided detail from err, falling
// back to the given generic message.
func failureMessage(err error, fallback string) string {
	var be *api.BackendError
	if errors.As(err, &be) && be.Detail != "" {
		return be.Detail
	}
	return fallback
}

// Register creates a new user. On success the user is notified and
// sent to the login surface; they are still logged out and must log in.
func (m *Manager) Register(ctx context.Context, creds models.Credentials) error {
	if err := m.validate(creds); err != nil {
		return err
	}

	if _, err := m.client.Register(ctx, creds); err != nil {
		m.notifier.Error(failureMessage(err, "Registration failed"))
		return err
	}

	m.notifier.Success("Registered successfully, please login")
	m.nav.GoTo(PathLogin)
	return nil
}

// Login authenticates and, on success, persists the access token and
// the identity decoded from it, then navigates to the dashboard. The
// refresh token is returned on the Session but not persisted. A
// malformed access token aborts the login before anything is stored.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := m.validate(creds); err != nil {
		return models.Session{}, err
	}

	session, err := m.client.Login(ctx, creds)
	if err != nil {
		m.notifier.Error(failureMessage(err, "Login failed"))
		return models.Session{}, err
	}

	if session.AccessToken == "" {
		m.notifier.Error("No token returned")
		return models.Session{}, ErrNoToken
	}

	identity, err := DecodeIdentity(session.AccessToken)
	if err != nil {
		m.notifier.Error("Login failed")
		return models.Session{}, err
	}

	if err := m.persist(ctx, session.AccessToken, identity); err != nil {
		m.notifier.Error("Login failed")
		return models.Session{}, err
	}

	m.notifier.Success("Login successful")
	m.nav.GoTo(PathDashboard)
	return session, nil
}

func (m *Manager) persist(ctx context.Context, token string, identity models.UserIdentity) error {
	if err := m.store.Set(ctx, KeyAccessToken, []byte(token)); err != nil {
		return fmt.Errorf("persisting access token: %w", err)
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	if err := m.store.Set(ctx, KeyUser, data); err != nil {
		return fmt.Errorf("persisting identity: %w", err)
	}
	return nil
}

// Logout clears both persisted keys, sends the user to the login
// surface, and notifies success. Purely local; safe to call when no
// session exists.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, KeyAccessToken); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, KeyUser); err != nil {
		return err
	}

	m.nav.GoTo(PathLogin)
	m.notifier.Success("Logged out successfully")
	return nil
}

// CurrentUser is a tolerant read of the persisted identity. Absent or
// unparsable data yields nil, never an error.
func (m *Manager) CurrentUser(ctx context.Context) *models.UserIdentity {
	data, err := m.store.Get(ctx, KeyUser)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted identity", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var identity models.UserIdentity
	if err := json.Unmarshal(data, &identity); err != nil {
		m.log.Warn(ctx, "malformed persisted identity", "error", err)
		return nil
	}
	return &identity
}

// IsLoggedIn reports whether a persisted access token exists. This is
// a presence check only; expiry and signature are not validated here.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	return m.AccessToken(ctx) != ""
}

// AccessToken returns the persisted access token, or "" when logged
// out. Used as the bearer-token source for outgoing API requests.
func (m *Manager) AccessToken(ctx context.Context) string {
	data, err := m.store.Get(ctx, KeyAccessToken)
	if err != nil {
		m.log.Warn(ctx, "failed to read access token", "error", err)
		return ""
	}
	return string(data)
}

// LoginWithGoogle hands the whole surface off to the backend's
// federated-login entry point. This is a navigation, not an API call;
// control leaves the application.
func (m *Manager) LoginWithGoogle() {
	m.nav.GoTo(m.client.GoogleLoginURL())
}
