package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/entity"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	sets    map[string]int
	failGet map[string]bool
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{
		data:    make(map[string][]byte),
		sets:    make(map[string]int),
		failGet: make(map[string]bool),
	}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet[key] {
		return nil, false, errors.New("read failed")
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet {
		return errors.New("write failed")
	}
	s.data[key] = append([]byte(nil), value...)
	s.sets[key]++
	return nil
}

func (s *memStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

func (s *memStore) Ping(context.Context) error { return nil }

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testStart = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *memStore, *testClock) {
	t.Helper()
	store := newMemStore()
	clock := &testClock{now: testStart}
	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())
	return e, store, clock
}

func expense(amount int64) TransactionInput {
	return TransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(amount), Category: "alimentacao"}
}

func income(amount int64) TransactionInput {
	return TransactionInput{Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(amount), Category: "salario"}
}

func mustAdd(t *testing.T, e *Engine, in TransactionInput) *AddTransactionResult {
	t.Helper()
	res, err := e.AddTransaction(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res
}

func missionStatus(e *Engine, id string) entity.MissionStatus {
	for _, m := range e.Missions() {
		if m.ID == id {
			return m.Status
		}
	}
	return ""
}

func badgeUnlocked(u *entity.User, id string) bool {
	for _, b := range u.Badges {
		if b.ID == id {
			return b.Unlocked
		}
	}
	return false
}

func assertBalanceIdentity(t *testing.T, u *entity.User) {
	t.Helper()
	if !u.Balance.Equal(u.TotalIncome.Sub(u.TotalExpenses)) {
		t.Fatalf("expected balance %s to equal income %s minus expenses %s", u.Balance, u.TotalIncome, u.TotalExpenses)
	}
}
