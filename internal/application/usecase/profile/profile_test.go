package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/contacomigo/backend/internal/application/session"
	"github.com/contacomigo/backend/internal/application/usecase/usecasetest"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

func TestSetupProfileUseCase(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		avatar  string
		wantErr error
	}{
		{name: "plain handle", handle: "ana_souza", avatar: "avatar1"},
		{name: "handle with at sign", handle: "@ana_souza", avatar: "avatar10"},
		{name: "too short", handle: "ab", avatar: "avatar1", wantErr: domainerror.ErrInvalidHandle},
		{name: "too long", handle: "abcdefghijklmnopqrstu", avatar: "avatar1", wantErr: domainerror.ErrInvalidHandle},
		{name: "invalid characters", handle: "ana-souza", avatar: "avatar1", wantErr: domainerror.ErrInvalidHandle},
		{name: "unknown avatar", handle: "ana_souza", avatar: "avatar99", wantErr: domainerror.ErrAvatarNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, store, _ := usecasetest.NewEngineWith(t)
			sessions := session.NewStore(store, "")

			out, err := NewSetupProfileUseCase(sessions, eng).Execute(context.Background(), SetupProfileInput{
				Handle:   tt.handle,
				AvatarID: tt.avatar,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if eng.User().Name != "Usuário" {
					t.Error("expected name to be unchanged")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Profile.Username != "@ana_souza" || out.Profile.DisplayName != "ana_souza" {
				t.Errorf("unexpected profile %+v", out.Profile)
			}
			if eng.User().Name != "ana_souza" {
				t.Errorf("expected user name ana_souza, got %s", eng.User().Name)
			}

			got, err := NewGetProfileUseCase(sessions).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Avatar.ID != tt.avatar {
				t.Errorf("expected avatar %s, got %s", tt.avatar, got.Avatar.ID)
			}
		})
	}
}

func TestGetProfileUseCase_NotSetup(t *testing.T) {
	sessions := session.NewStore(usecasetest.NewMemStore(), "")
	_, err := NewGetProfileUseCase(sessions).Execute(context.Background())
	if !errors.Is(err, domainerror.ErrProfileNotSetup) {
		t.Errorf("expected ErrProfileNotSetup, got %v", err)
	}
}

func TestListAvatarsUseCase(t *testing.T) {
	out, _ := NewListAvatarsUseCase().Execute(context.Background())
	if len(out.Avatars) != 10 {
		t.Errorf("expected 10 avatars, got %d", len(out.Avatars))
	}
}
