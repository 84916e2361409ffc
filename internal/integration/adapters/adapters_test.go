package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewTokenService("test-secret", TokenDurations{}, clock)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "session-1", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.ExpiresIn != 900 {
		t.Errorf("expected 900 seconds, got %d", pair.ExpiresIn)
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.SessionID != "session-1" || claims.Email != "user@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected access token to be rejected as refresh token, got %v", err)
	}
	if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected refresh token to be rejected as access token, got %v", err)
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewTokenService("test-secret", TokenDurations{Access: time.Minute}, clock)

	pair, err := svc.GenerateTokenPair(context.Background(), "session-1", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.now = clock.now.Add(2 * time.Minute)

	if _, err := svc.ValidateAccessToken(context.Background(), pair.AccessToken); !errors.Is(err, domainerror.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	pair, _ := NewTokenService("one", TokenDurations{}, nil).GenerateTokenPair(context.Background(), "s", "e@x.com")

	_, err := NewTokenService("two", TokenDurations{}, nil).ValidateAccessToken(context.Background(), pair.AccessToken)
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordServiceWithCost(bcrypt.MinCost)

	hash, err := svc.HashPassword("contacomigo123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.VerifyPassword(hash, "contacomigo123"); err != nil {
		t.Errorf("expected password to match, got %v", err)
	}
	if err := svc.VerifyPassword(hash, "wrong"); err == nil {
		t.Error("expected mismatch")
	}
}

func TestGeminiTipService_IsAvailable(t *testing.T) {
	tests := map[string]bool{
		"":                  false,
		placeholderAPIKey:   false,
		"AIza-real-api-key": true,
	}
	for key, want := range tests {
		if got := NewGeminiTipService(key, "").IsAvailable(); got != want {
			t.Errorf("expected available %v for %q, got %v", want, key, got)
		}
	}

	if _, err := NewGeminiTipService("", "").GenerateTip(context.Background(), "x"); err == nil {
		t.Error("expected error when not configured")
	}
}

func TestBuildTipPrompt(t *testing.T) {
	prompt := BuildTipPrompt("O usuario Ana esta com saldo de R$ 10.00")
	if !strings.Contains(prompt, "Contexto do usuário: O usuario Ana esta com saldo de R$ 10.00") {
		t.Errorf("expected summary in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "máximo 2 frases") {
		t.Error("expected length instruction in prompt")
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("  Guarde "), genai.Text("10%.  ")}},
		}},
	}
	if got := responseText(resp); got != "Guarde 10%." {
		t.Errorf("expected %q, got %q", "Guarde 10%.", got)
	}
	if got := responseText(&genai.GenerateContentResponse{}); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
	if got := responseText(nil); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}
