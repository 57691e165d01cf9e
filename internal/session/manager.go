// Package session owns the authentication state machine: a manager is
// either unauthenticated or holds exactly one session, persisted across
// runs through the storage port.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/lamdoan/classdesk/internal/api"
	"github.com/lamdoan/classdesk/internal/logger"
	"github.com/lamdoan/classdesk/internal/model"
)

// Connectivity reports whether the backend is currently reachable.
// Satisfied by *health.Probe.
type Connectivity interface {
	Online() bool
}

// Manager holds the current session and decides between the backend
// auth endpoints and the offline demo-credential fallback.
type Manager struct {
	api    model.AuthAPI
	store  model.KeyValueStore
	conn   Connectivity
	demo   []model.DemoUser
	logger *logger.Logger

	mu      sync.RWMutex
	current *model.Session
}

// NewManager creates a session manager. demo is the offline credential
// list consulted when the backend is unreachable.
func NewManager(
	authAPI model.AuthAPI,
	store model.KeyValueStore,
	conn Connectivity,
	demo []model.DemoUser,
	logger *logger.Logger,
) *Manager {
	return &Manager{
		api:    authAPI,
		store:  store,
		conn:   conn,
		demo:   demo,
		logger: logger,
	}
}

// CurrentUser returns the authenticated user, if any.
func (m *Manager) CurrentUser() (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return model.User{}, false
	}

	return m.current.User, true
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	_, ok := m.CurrentUser()
	return ok
}

// Login authenticates with the backend when reachable, or against the
// bundled demo credentials otherwise. The returned user never carries a
// password. Errors propagate to the caller for display.
func (m *Manager) Login(ctx context.Context, email, password string) (model.User, error) {
	m.logger.Debug("Session manager: login attempt", "email", email)

	if !m.conn.Online() {
		return m.loginOffline(email, password)
	}

	session, err := m.api.Login(ctx, email, password)
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized {
			m.logger.Info("Session manager: credentials rejected", "email", email)
			return model.User{}, model.ErrInvalidCredentials
		}
		m.logger.Error("Session manager: login failed",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to login: %w", err)
	}

	if err := m.install(session); err != nil {
		return model.User{}, err
	}

	m.logger.Info("Session manager: login successful",
		"email", email,
		"role", session.User.Role)

	return session.User, nil
}

// loginOffline matches the credentials against the demo list. This is a
// disconnected demo mode, not a security boundary.
func (m *Manager) loginOffline(email, password string) (model.User, error) {
	for _, du := range m.demo {
		if du.Email == email && du.Password == password {
			if err := m.install(model.Session{User: du.User}); err != nil {
				return model.User{}, err
			}

			m.logger.Info("Session manager: offline demo login",
				"email", email,
				"role", du.Role)

			return du.User, nil
		}
	}

	return model.User{}, model.ErrInvalidCredentials
}

// install makes the session current and persists it.
func (m *Manager) install(session model.Session) error {
	if err := m.api.SetToken(session.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := m.store.Set(model.StorageKeyUser, string(userJSON)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	m.mu.Lock()
	m.current = &session
	m.mu.Unlock()

	return nil
}

// Logout clears the session. The backend notification is best effort
// and local cleanup always succeeds, so logout cannot fail observably.
func (m *Manager) Logout(ctx context.Context) {
	if m.conn.Online() {
		if err := m.api.Logout(ctx); err != nil {
			m.logger.Debug("Session manager: logout notification failed",
				"error", err.Error())
		}
	}

	if err := m.api.SetToken(""); err != nil {
		m.logger.Debug("Session manager: failed to clear token",
			"error", err.Error())
	}
	if err := m.store.Remove(model.StorageKeyUser); err != nil && !errors.Is(err, model.ErrNotFound) {
		m.logger.Debug("Session manager: failed to clear persisted user",
			"error", err.Error())
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	m.logger.Info("Session manager: logged out")
}

// Restore rebuilds a session from the persisted token and user. It
// reports whether anything was restored; Verify decides whether the
// restored session is still valid.
func (m *Manager) Restore(ctx context.Context) bool {
	userJSON, err := m.store.Get(model.StorageKeyUser)
	if err != nil {
		return false
	}

	var user model.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		m.logger.Error("Session manager: corrupt persisted user, discarding",
			"error", err.Error())
		m.Logout(ctx)
		return false
	}

	token, err := m.store.Get(model.StorageKeyToken)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return false
	}

	if err := m.install(model.Session{User: user, Token: token}); err != nil {
		m.logger.Error("Session manager: failed to restore session",
			"error", err.Error())
		return false
	}

	m.logger.Info("Session manager: session restored",
		"email", user.Email,
		"role", user.Role)

	return true
}

// Verify re-validates the session token against the backend. Any
// failure forces a logout. Offline sessions are left alone: there is
// nothing to check them against.
func (m *Manager) Verify(ctx context.Context) error {
	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()

	if current == nil {
		return model.ErrNotAuthenticated
	}

	if !m.conn.Online() || current.Token == "" {
		return nil
	}

	user, err := m.api.Verify(ctx)
	if err != nil {
		m.logger.Info("Session manager: session verification failed, logging out",
			"error", err.Error())
		m.Logout(ctx)
		return fmt.Errorf("session invalid: %w", err)
	}

	// the backend may have changed role or class assignments
	if err := m.install(model.Session{User: user, Token: current.Token}); err != nil {
		return err
	}

	return nil
}

// HasPermission is a pure function of the current role: "admin"
// requires ADMIN, "teacher" requires ADMIN or TEACHER, anything else is
// always granted.
func (m *Manager) HasPermission(p model.Permission) bool {
	user, _ := m.CurrentUser()

	switch p {
	case model.PermissionAdmin:
		return user.Role == model.RoleAdmin
	case model.PermissionTeacher:
		return user.Role == model.RoleAdmin || user.Role == model.RoleTeacher
	default:
		return true
	}
}
