package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// handlePattern matches 3 to 20 letters, digits or underscores.
var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// NormalizeHandle strips surrounding spaces and a leading @.
func NormalizeHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// IsValidHandle reports whether a handle, with or without @, is acceptable.
func IsValidHandle(handle string) bool {
	return handlePattern.MatchString(NormalizeHandle(handle))
}

// UserProfile is the public identity chosen during profile setup.
type UserProfile struct {
	Username       string `json:"username"`
	DisplayName    string `json:"displayName"`
	AvatarID       string `json:"avatarId"`
	IsProfileSetup bool   `json:"isProfileSetup"`
}

// NewUserProfile builds a completed profile from a handle with or without the leading @.
func NewUserProfile(handle, avatarID string) *UserProfile {
	clean := NormalizeHandle(handle)
	return &UserProfile{
		Username:       "@" + clean,
		DisplayName:    clean,
		AvatarID:       avatarID,
		IsProfileSetup: true,
	}
}

// Avatar is an entry of the avatar catalog.
type Avatar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Seed  string `json:"seed"`
	Style string `json:"style"`
}

// URL returns the DiceBear image URL of the avatar.
func (a Avatar) URL() string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%s", a.Style, a.Seed)
}

// AuthSession is the single active login.
type AuthSession struct {
	SessionID string    `json:"sessionId"`
	Email     string    `json:"email"`
	StartedAt time.Time `json:"startedAt"`
}
