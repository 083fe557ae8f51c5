package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	webstorage "github.com/louisbranch/clearance/internal/services/web/storage"
)

type fakeStore struct {
	mu       sync.Mutex
	users    map[string]webstorage.User
	sessions map[string]webstorage.WebSession
	revoked  map[string]time.Time
	err      error
	block    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]webstorage.User),
		sessions: make(map[string]webstorage.WebSession),
		revoked:  make(map[string]time.Time),
	}
}

// wait blocks until ctx ends when the store is configured to stall.
func (s *fakeStore) wait(ctx context.Context) error {
	if !s.block {
		return s.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *fakeStore) PutUser(_ context.Context, u webstorage.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

func (s *fakeStore) GetUser(ctx context.Context, userID string) (webstorage.User, error) {
	if err := s.wait(ctx); err != nil {
		return webstorage.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return webstorage.User{}, webstorage.ErrNotFound
	}
	return u, nil
}

func (s *fakeStore) PutWebSession(_ context.Context, session webstorage.WebSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeStore) GetWebSession(ctx context.Context, id string) (webstorage.WebSession, error) {
	if err := s.wait(ctx); err != nil {
		return webstorage.WebSession{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return webstorage.WebSession{}, webstorage.ErrNotFound
	}
	return session, nil
}

func (s *fakeStore) RevokeWebSession(_ context.Context, id string, revokedAt time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return webstorage.ErrNotFound
	}
	session.RevokedAt = &revokedAt
	s.sessions[id] = session
	return nil
}

func (s *fakeStore) DeleteExpiredWebSessions(context.Context, time.Time) error {
	return nil
}

func (s *fakeStore) RevokeToken(_ context.Context, tokenID string, _ time.Time, revokedAt time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = revokedAt
	return nil
}

func (s *fakeStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func (s *fakeStore) Close() error {
	return nil
}

var errStoreDown = errors.New("store down")

var _ webstorage.Store = (*fakeStore)(nil)
