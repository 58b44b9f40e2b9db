package session

import (
	"context"
	"errors"
	"sync"
)

// ErrReadOnly is returned when writing to a credential the caller supplied
// per request.
var ErrReadOnly = errors.New("credential is read-only")

// ErrNoSession is returned by Login when neither the context nor the Manager
// names a store.
var ErrNoSession = errors.New("no session store")

// Provider hands out the token store of one session. A multi-user front end
// such as the gateway keeps one session per browser.
type Provider interface {
	For(sessionID string) Store
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(sessionID string) Store

// For calls f(sessionID).
func (f ProviderFunc) For(sessionID string) Store {
	return f(sessionID)
}

type storeKey struct{}

// WithStore binds store to ctx. A Manager prefers it over its own store, so
// every call made with ctx reads and clears only this credential.
func WithStore(ctx context.Context, store Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// StoreFrom returns the store bound by WithStore.
func StoreFrom(ctx context.Context) (Store, bool) {
	store, ok := ctx.Value(storeKey{}).(Store)
	return store, ok && store != nil
}

// BearerStore is a credential presented with the request itself. It cannot
// be replaced, and clearing it is a no-op because nothing was persisted. The
// empty value is the anonymous credential.
type BearerStore string

// Anonymous holds no token.
const Anonymous = BearerStore("")

// Token returns the bearer token or ErrNoToken.
func (b BearerStore) Token(context.Context) (string, error) {
	if b == "" {
		return "", ErrNoToken
	}
	return string(b), nil
}

// SetToken always fails with ErrReadOnly.
func (b BearerStore) SetToken(context.Context, string) error {
	return ErrReadOnly
}

// Clear does nothing.
func (b BearerStore) Clear(context.Context) error {
	return nil
}

// MemoryProvider keeps one token per session ID in process memory. Reading
// an unknown session allocates nothing.
type MemoryProvider struct {
	mu     sync.Mutex
	tokens map[string]string
}

// NewMemoryProvider returns an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{tokens: make(map[string]string)}
}

// For returns the store of sessionID.
func (p *MemoryProvider) For(sessionID string) Store {
	return memorySession{p: p, id: sessionID}
}

// Len returns the number of sessions holding a token.
func (p *MemoryProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.tokens)
}

// Ping always succeeds.
func (p *MemoryProvider) Ping(ctx context.Context) error {
	return nil
}

type memorySession struct {
	p  *MemoryProvider
	id string
}

func (s memorySession) Token(context.Context) (string, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()

	token, ok := s.p.tokens[s.id]
	if !ok {
		return "", ErrNoToken
	}
	return token, nil
}

func (s memorySession) SetToken(_ context.Context, token string) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()

	s.p.tokens[s.id] = token
	return nil
}

func (s memorySession) Clear(context.Context) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()

	delete(s.p.tokens, s.id)
	return nil
}
