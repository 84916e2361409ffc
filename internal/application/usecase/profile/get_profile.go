package profile

import (
	"context"
	"fmt"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/session"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// GetProfileUseCase returns the stored profile.
type GetProfileUseCase struct {
	sessions *session.Store
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(sessions *session.Store) *GetProfileUseCase {
	return &GetProfileUseCase{sessions: sessions}
}

// Execute returns the profile, or a PRF-020001 error when none was set up.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*ProfileOutput, error) {
	p, err := uc.sessions.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if p == nil || !p.IsProfileSetup {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotSetup,
			"profile has not been set up",
			domainerror.ErrProfileNotSetup,
		)
	}

	out := &ProfileOutput{Profile: p}
	if avatar, ok := engine.FindAvatar(p.AvatarID); ok {
		out.Avatar = avatar
	}
	return out, nil
}

// ListAvatarsOutput represents the avatar catalog.
type ListAvatarsOutput struct {
	Avatars []entity.Avatar
}

// ListAvatarsUseCase returns the avatar catalog.
type ListAvatarsUseCase struct{}

// NewListAvatarsUseCase creates a new ListAvatarsUseCase instance.
func NewListAvatarsUseCase() *ListAvatarsUseCase {
	return &ListAvatarsUseCase{}
}

// Execute returns every avatar.
func (uc *ListAvatarsUseCase) Execute(_ context.Context) (*ListAvatarsOutput, error) {
	return &ListAvatarsOutput{Avatars: engine.AvatarCatalog()}, nil
}
