package adapter

import "context"

// TipService generates a short financial tip for a user summary.
type TipService interface {
	// GenerateTip returns a tip for the given Portuguese context sentence.
	GenerateTip(ctx context.Context, summary string) (string, error)

	// IsAvailable checks if the service is properly configured.
	IsAvailable() bool
}
