// Package session persists the login session and the user profile next to
// the engine slices.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// Store reads and writes the auth and profile slices.
type Store struct {
	state adapter.StateStore
	ns    valueobject.Namespace
}

// NewStore creates a new session store.
func NewStore(state adapter.StateStore, ns valueobject.Namespace) *Store {
	if ns == "" {
		ns = valueobject.DefaultNamespace
	}
	return &Store{state: state, ns: ns}
}

// Session returns the active session, or nil when nobody is logged in.
func (s *Store) Session(ctx context.Context) (*entity.AuthSession, error) {
	var sess entity.AuthSession
	ok, err := s.get(ctx, valueobject.SliceAuth, &sess)
	if err != nil || !ok {
		return nil, err
	}
	return &sess, nil
}

// SaveSession replaces the active session.
func (s *Store) SaveSession(ctx context.Context, sess *entity.AuthSession) error {
	return s.set(ctx, valueobject.SliceAuth, sess)
}

// Profile returns the stored profile, or nil when none was set up.
func (s *Store) Profile(ctx context.Context) (*entity.UserProfile, error) {
	var p entity.UserProfile
	ok, err := s.get(ctx, valueobject.SliceProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SaveProfile replaces the stored profile.
func (s *Store) SaveProfile(ctx context.Context, p *entity.UserProfile) error {
	return s.set(ctx, valueobject.SliceProfile, p)
}

// Clear removes both the session and the profile.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.state.Delete(ctx, s.ns.Key(valueobject.SliceAuth), s.ns.Key(valueobject.SliceProfile)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, slice valueobject.StateSlice, dst any) (bool, error) {
	key := s.ns.Key(slice)
	data, found, err := s.state.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// A corrupt slice reads as absent.
		return false, nil
	}
	return true, nil
}

func (s *Store) set(ctx context.Context, slice valueobject.StateSlice, v any) error {
	key := s.ns.Key(slice)
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.state.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
