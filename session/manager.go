// Package session owns the authenticated-user lifecycle: restoring a
// persisted session at startup, login/signup transitions, and logout. It is
// an explicit object handed to page logic rather than ambient global state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"campus-connect-client/api"
	"campus-connect-client/model"
	"campus-connect-client/token"
)

type Manager struct {
	client *api.Client
	store  *Store
	logger *slog.Logger

	mu      sync.RWMutex
	user    *model.User
	loading bool

	// Collapses concurrent login attempts onto one in-flight request so the
	// last-response-wins race cannot happen.
	group singleflight.Group
}

func NewManager(client *api.Client, store *Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{client: client, store: store, logger: logger}
}

// User returns the current authenticated user, if any.
func (m *Manager) User() (*model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil, false
	}

	copied := *m.user
	return &copied, true
}

// Loading reports whether a session transition is in flight. It is false
// only after Init (or a later transition) reaches a terminal state.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Init restores a persisted session. Without a stored token and user it
// resolves unauthenticated immediately, with no backend call. A stored but
// invalid token is purged. A valid one is confirmed with the backend; any
// verification failure also purges. Exactly one terminal transition occurs.
func (m *Manager) Init(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	tok, hasToken := m.store.Token()
	_, hasUser := m.store.User()
	if !hasToken || !hasUser {
		m.setUser(nil)
		return nil
	}

	if err := token.Check(tok); err != nil {
		m.logger.Info("stored token is unusable, clearing session", "reason", err.Error())
		m.store.Clear()
		m.setUser(nil)
		return nil
	}

	verified, err := m.client.Auth.Verify(ctx)
	if err != nil {
		m.logger.Warn("session verification failed", "error", err.Error())
		m.store.Clear()
		m.setUser(nil)
		return nil
	}

	m.setUser(&model.User{
		ID:    verified.User.ID,
		Email: verified.User.Email,
		Name:  verified.User.Name,
		Role:  verified.User.Role,
	})
	m.logger.Info("session restored", "user_id", verified.User.ID)

	return nil
}

// Login authenticates with the backend. Accounts still pending verification
// or rejected are refused without persisting anything. Concurrent calls
// share a single request.
func (m *Manager) Login(ctx context.Context, email string, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	_, err, _ := m.group.Do("login", func() (any, error) {
		resp, err := m.client.Auth.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}

		switch resp.VerificationStatus {
		case model.VerificationPending:
			return nil, fmt.Errorf("%w: please wait for admin approval", model.ErrVerificationPending)
		case model.VerificationRejected:
			return nil, fmt.Errorf("%w: please contact the administrator", model.ErrVerificationRejected)
		}

		if err := m.store.SetSession(resp.Token, resp.User); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}

		user := resp.User
		m.setUser(&user)
		m.logger.Info("login successful", "user_id", user.ID, "role", user.Role)

		return nil, nil
	})

	return err
}

// Signup registers a new account and authenticates it unconditionally; new
// accounts get immediate access regardless of verification status.
func (m *Manager) Signup(ctx context.Context, req model.SignupRequest) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.client.Auth.Signup(ctx, req)
	if err != nil {
		return err
	}

	if err := m.store.SetSession(resp.Token, resp.User); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	user := resp.User
	m.setUser(&user)
	m.logger.Info("signup successful", "user_id", user.ID, "role", user.Role)

	return nil
}

// Expire drops the in-memory user after the gateway already purged the
// persisted pair on an unauthorized response.
func (m *Manager) Expire() {
	m.setUser(nil)
}

// Logout clears the persisted credentials and the in-memory user. No backend
// call is made.
func (m *Manager) Logout() {
	m.store.Clear()
	m.setUser(nil)
	m.logger.Info("logged out")
}

func (m *Manager) setUser(user *model.User) {
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
