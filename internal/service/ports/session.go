package ports

import (
	"context"
	"sync"
)

type storeSessionKey struct{}

// StoreSession scopes LastInsertedID to a single logical caller.
type StoreSession struct {
	mu     sync.Mutex
	lastID int64
	set    bool
}

// WithStoreSession attaches a fresh session to ctx. Stores record inserted ids into it.
func WithStoreSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, storeSessionKey{}, &StoreSession{})
}

func StoreSessionFrom(ctx context.Context) (*StoreSession, bool) {
	s, ok := ctx.Value(storeSessionKey{}).(*StoreSession)
	return s, ok
}

func (s *StoreSession) SetLastID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = id
	s.set = true
}

func (s *StoreSession) LastID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID, s.set
}
