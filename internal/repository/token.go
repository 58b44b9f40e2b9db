package repository

import (
	"context"
	"errors"

	"github.com/steelerp/erpclient/internal/session"
)

var (
	_ session.Store    = (*TokenStore)(nil)
	_ session.Provider = (*TokenStore)(nil)
)

// TokenStore keeps the auth token in client_storage under session.TokenKey.
type TokenStore struct {
	repo *Repository
	key  string
}

// TokenStore returns a token store backed by this repository. An empty
// namespace stores the token under the bare key.
func (r *Repository) TokenStore(namespace string) *TokenStore {
	return &TokenStore{repo: r, key: namespace + session.TokenKey}
}

// For returns the store of one session under "<key>:<sessionID>".
func (s *TokenStore) For(sessionID string) session.Store {
	return &TokenStore{repo: s.repo, key: s.key + ":" + sessionID}
}

// Token returns the stored token or session.ErrNoToken.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.repo.GetValue(ctx, s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", session.ErrNoToken
	}
	return token, err
}

// SetToken stores token.
func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	return s.repo.SetValue(ctx, s.key, token)
}

// Clear removes the token.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.repo.DeleteValue(ctx, s.key)
}

// Ping checks database connectivity.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
