package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/session"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// AuthorizeInput represents a bearer access token to check.
type AuthorizeInput struct {
	AccessToken string
}

// AuthorizeOutput carries the identity of an authorized request.
type AuthorizeOutput struct {
	SessionID string
	Email     string
}

// AuthorizeUseCase validates an access token against the active session.
type AuthorizeUseCase struct {
	sessions     *session.Store
	tokenService adapter.TokenService
}

// NewAuthorizeUseCase creates a new AuthorizeUseCase instance.
func NewAuthorizeUseCase(sessions *session.Store, tokenService adapter.TokenService) *AuthorizeUseCase {
	return &AuthorizeUseCase{
		sessions:     sessions,
		tokenService: tokenService,
	}
}

// Execute returns the identity behind the token, or an *AuthError.
func (uc *AuthorizeUseCase) Execute(ctx context.Context, input AuthorizeInput) (*AuthorizeOutput, error) {
	claims, err := uc.tokenService.ValidateAccessToken(ctx, input.AccessToken)
	if err != nil {
		return nil, tokenError(err)
	}

	if err := requireActiveSession(ctx, uc.sessions, claims.SessionID); err != nil {
		return nil, err
	}

	return &AuthorizeOutput{
		SessionID: claims.SessionID,
		Email:     claims.Email,
	}, nil
}

func tokenError(err error) error {
	if errors.Is(err, domainerror.ErrExpiredToken) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeExpiredToken,
			"token has expired",
			domainerror.ErrExpiredToken,
		)
	}
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidToken,
		"invalid token",
		domainerror.ErrInvalidToken,
	)
}

// requireActiveSession fails unless sessionID is the stored session.
func requireActiveSession(ctx context.Context, sessions *session.Store, sessionID string) error {
	sess, err := sessions.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if sess == nil || sess.SessionID != sessionID {
		return domainerror.NewAuthError(
			domainerror.ErrCodeSessionNotFound,
			"session is no longer active",
			domainerror.ErrSessionNotFound,
		)
	}
	return nil
}
