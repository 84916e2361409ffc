// Package profile contains profile setup use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/session"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// SetupProfileInput represents the input for profile setup.
type SetupProfileInput struct {
	Handle   string
	AvatarID string
}

// ProfileOutput represents a profile with its resolved avatar.
type ProfileOutput struct {
	Profile *entity.UserProfile
	Avatar  entity.Avatar
}

// SetupProfileUseCase handles profile setup logic.
type SetupProfileUseCase struct {
	sessions *session.Store
	engine   *engine.Engine
}

// NewSetupProfileUseCase creates a new SetupProfileUseCase instance.
func NewSetupProfileUseCase(sessions *session.Store, eng *engine.Engine) *SetupProfileUseCase {
	return &SetupProfileUseCase{
		sessions: sessions,
		engine:   eng,
	}
}

// Execute validates and stores the profile, then shows the handle in the feed.
func (uc *SetupProfileUseCase) Execute(ctx context.Context, input SetupProfileInput) (*ProfileOutput, error) {
	if !entity.IsValidHandle(input.Handle) {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidHandle,
			"handle must be 3 to 20 letters, numbers or underscores",
			domainerror.ErrInvalidHandle,
		)
	}

	avatar, ok := engine.FindAvatar(input.AvatarID)
	if !ok {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeAvatarNotFound,
			"avatar not found",
			domainerror.ErrAvatarNotFound,
		)
	}

	p := entity.NewUserProfile(input.Handle, avatar.ID)
	if err := uc.sessions.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if _, err := uc.engine.UpdateUserName(ctx, p.DisplayName); err != nil {
		return nil, err
	}

	return &ProfileOutput{Profile: p, Avatar: avatar}, nil
}
