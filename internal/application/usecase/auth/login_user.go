// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/session"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// Credentials is the single account allowed to log in.
type Credentials struct {
	Email        string
	PasswordHash string
}

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	Email        string
	ProfileSetup bool
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	credentials     Credentials
	sessions        *session.Store
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	clock           adapter.Clock
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	credentials Credentials,
	sessions *session.Store,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	clock adapter.Clock,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		credentials:     credentials,
		sessions:        sessions,
		passwordService: passwordService,
		tokenService:    tokenService,
		clock:           clock,
	}
}

// Execute performs the user login. A successful login replaces any previous session.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Same error for unknown email and wrong password
	if email != strings.ToLower(uc.credentials.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}
	if err := uc.passwordService.VerifyPassword(uc.credentials.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	sess := &entity.AuthSession{
		SessionID: uuid.NewString(),
		Email:     email,
		StartedAt: uc.clock.Now(),
	}
	if err := uc.sessions.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, sess.SessionID, sess.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	profile, err := uc.sessions.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
		Email:        sess.Email,
		ProfileSetup: profile != nil && profile.IsProfileSetup,
	}, nil
}
