// Package session owns the client-side credential: where the bearer token is
// persisted, how it is cleared, and where the user is sent when it expires.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// TokenKey is the fixed storage key of the bearer token.
const TokenKey = "token"

// DefaultLoginPath is where users are sent after their session expires.
const DefaultLoginPath = "/login"

// ErrNoToken is returned by stores that hold no token.
var ErrNoToken = errors.New("no auth token stored")

// ErrEmptyToken is returned by Login for an empty token.
var ErrEmptyToken = errors.New("empty token")

// Store persists the bearer token. Clearing an empty store is not an error.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Navigator moves the user to another screen of the front end.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string)

// Navigate calls f(ctx, path).
func (f NavigatorFunc) Navigate(ctx context.Context, path string) {
	f(ctx, path)
}

// LogNavigator records navigation requests in the log. It suits callers
// without a screen to switch, such as the gateway, whose HTTP responses
// carry the redirect instead.
type LogNavigator struct {
	Logger *slog.Logger
}

// Navigate logs the requested path.
func (n LogNavigator) Navigate(ctx context.Context, path string) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "session_redirect", "path", path)
}

// Manager ties a Store to a Navigator. A store bound to the context with
// WithStore takes precedence over the Manager's own, which may be nil for
// front ends that serve several users.
type Manager struct {
	store     Store
	nav       Navigator
	loginPath string
	logger    *slog.Logger
}

// NewManager creates a Manager. An empty loginPath selects DefaultLoginPath;
// a nil navigator logs redirects.
func NewManager(store Store, nav Navigator, loginPath string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if nav == nil {
		nav = LogNavigator{Logger: logger}
	}
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	return &Manager{
		store:     store,
		nav:       nav,
		loginPath: loginPath,
		logger:    logger,
	}
}

func (m *Manager) storeFor(ctx context.Context) Store {
	if store, ok := StoreFrom(ctx); ok {
		return store
	}
	return m.store
}

// Token returns the stored token, or "" when none is stored. No caching: every
// call reads the store so a rotated token is used immediately.
func (m *Manager) Token(ctx context.Context) (string, error) {
	store := m.storeFor(ctx)
	if store == nil {
		return "", nil
	}
	token, err := store.Token(ctx)
	if errors.Is(err, ErrNoToken) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read auth token: %w", err)
	}
	return token, nil
}

// Login stores a new token.
func (m *Manager) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	store := m.storeFor(ctx)
	if store == nil {
		return ErrNoSession
	}
	if err := store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("store auth token: %w", err)
	}
	m.logger.InfoContext(ctx, "session_started")
	return nil
}

// ClearSession removes the stored token. Without a store there is nothing to
// clear.
func (m *Manager) ClearSession(ctx context.Context) error {
	store := m.storeFor(ctx)
	if store == nil {
		return nil
	}
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("clear auth token: %w", err)
	}
	m.logger.InfoContext(ctx, "session_cleared")
	return nil
}

// RedirectToLogin sends the user to the login path.
func (m *Manager) RedirectToLogin(ctx context.Context) {
	m.nav.Navigate(ctx, m.loginPath)
}

// LoginPath returns the configured login path.
func (m *Manager) LoginPath() string {
	return m.loginPath
}
