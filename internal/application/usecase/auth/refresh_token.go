package auth

import (
	"context"
	"fmt"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/session"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshTokenUseCase handles token refresh logic.
type RefreshTokenUseCase struct {
	sessions     *session.Store
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(sessions *session.Store, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		sessions:     sessions,
		tokenService: tokenService,
	}
}

// Execute issues a new token pair for the still active session.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, tokenError(err)
	}

	// Logging out or in again invalidates every token of the old session
	if err := requireActiveSession(ctx, uc.sessions, claims.SessionID); err != nil {
		return nil, err
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, claims.SessionID, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}
