// Package usecasetest provides in-memory collaborators for use case tests.
package usecasetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/contacomigo/backend/internal/application/engine"
)

// Start is the instant every test clock begins at.
var Start = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// MemStore is a map-backed adapter.StateStore.
type MemStore struct {
	mu   sync.Mutex
	Data map[string][]byte
	Err  error
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{Data: make(map[string][]byte)}
}

func (s *MemStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, false, s.Err
	}
	v, ok := s.Data[key]
	return v, ok, nil
}

func (s *MemStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, k := range keys {
		delete(s.Data, k)
	}
	return nil
}

func (s *MemStore) Ping(context.Context) error {
	return s.Err
}

// Clock is a settable adapter.Clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock set to Start.
func NewClock() *Clock {
	return &Clock{now: Start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// NewEngine returns a loaded engine over a fresh store, in UTC.
func NewEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, _, _ := NewEngineWith(t)
	return eng
}

// NewEngineWith also returns the store and clock behind the engine.
func NewEngineWith(t *testing.T) (*engine.Engine, *MemStore, *Clock) {
	t.Helper()
	store := NewMemStore()
	clock := NewClock()
	eng := engine.New(store, clock, engine.Options{Location: time.UTC})
	eng.Load(context.Background())
	return eng, store, clock
}
