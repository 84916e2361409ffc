// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/contacomigo/backend/internal/application/adapter"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

const (
	// Default token durations
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 7 * 24 * time.Hour

	// Token types
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "contacomigo"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenDurations sets token lifetimes. Zero values use the defaults.
type TokenDurations struct {
	Access  time.Duration
	Refresh time.Duration
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret    []byte
	durations TokenDurations
	clock     adapter.Clock
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, durations TokenDurations, clock adapter.Clock) adapter.TokenService {
	if durations.Access <= 0 {
		durations.Access = defaultAccessTokenDuration
	}
	if durations.Refresh <= 0 {
		durations.Refresh = defaultRefreshTokenDuration
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	return &tokenService{
		secret:    []byte(secret),
		durations: durations,
		clock:     clock,
	}
}

// GenerateTokenPair generates a new access and refresh token pair bound to a session.
func (s *tokenService) GenerateTokenPair(_ context.Context, sessionID, email string) (*adapter.TokenPair, error) {
	accessToken, err := s.generateJWT(sessionID, email, tokenTypeAccess, s.durations.Access)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateJWT(sessionID, email, tokenTypeRefresh, s.durations.Refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.durations.Access.Seconds()),
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *tokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeRefresh)
}

func (s *tokenService) validate(token, tokenType string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("expected %s token: %w", tokenType, domainerror.ErrInvalidToken)
	}
	if claims.SessionID == "" {
		return nil, fmt.Errorf("missing session id: %w", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		SessionID: claims.SessionID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// generateJWT creates a new JWT token with the given parameters.
func (s *tokenService) generateJWT(sessionID, email, tokenType string, duration time.Duration) (string, error) {
	now := s.clock.Now().UTC()
	claims := CustomClaims{
		SessionID: sessionID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("failed to parse token: %w", domainerror.ErrExpiredToken)
		}
		return nil, fmt.Errorf("failed to parse token: %v: %w", err, domainerror.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domainerror.ErrInvalidToken)
	}

	return claims, nil
}
