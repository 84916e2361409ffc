package dto

import (
	"github.com/contacomigo/backend/internal/application/usecase/profile"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// SetupProfileRequest represents the request body for profile setup.
type SetupProfileRequest struct {
	Handle   string `json:"handle" binding:"required,handle"`
	AvatarID string `json:"avatar_id" binding:"required"`
}

// AvatarResponse represents an avatar in API responses.
type AvatarResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Seed  string `json:"seed"`
	Style string `json:"style"`
	URL   string `json:"url"`
}

// AvatarListResponse represents the avatar catalog.
type AvatarListResponse struct {
	Avatars []AvatarResponse `json:"avatars"`
}

// ProfileResponse represents the user profile in API responses.
type ProfileResponse struct {
	Username       string         `json:"username"`
	DisplayName    string         `json:"display_name"`
	IsProfileSetup bool           `json:"is_profile_setup"`
	Avatar         AvatarResponse `json:"avatar"`
}

// ToAvatarResponse converts a catalog avatar to its DTO.
func ToAvatarResponse(a entity.Avatar) AvatarResponse {
	return AvatarResponse{
		ID:    a.ID,
		Name:  a.Name,
		Seed:  a.Seed,
		Style: a.Style,
		URL:   a.URL(),
	}
}

// ToAvatarListResponse converts the avatar catalog to its DTO.
func ToAvatarListResponse(output *profile.ListAvatarsOutput) AvatarListResponse {
	avatars := make([]AvatarResponse, len(output.Avatars))
	for i, a := range output.Avatars {
		avatars[i] = ToAvatarResponse(a)
	}
	return AvatarListResponse{Avatars: avatars}
}

// ToProfileResponse converts a profile output to its DTO.
func ToProfileResponse(output *profile.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		Username:       output.Profile.Username,
		DisplayName:    output.Profile.DisplayName,
		IsProfileSetup: output.Profile.IsProfileSetup,
		Avatar:         ToAvatarResponse(output.Avatar),
	}
}
