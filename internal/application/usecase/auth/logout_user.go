package auth

import (
	"context"
	"fmt"

	"github.com/contacomigo/backend/internal/application/session"
)

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	sessions *session.Store
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessions *session.Store) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		sessions: sessions,
	}
}

// Execute ends the session and forgets the profile.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) (*LogoutUserOutput, error) {
	if err := uc.sessions.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to logout: %w", err)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
