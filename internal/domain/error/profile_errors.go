package error

import "errors"

// Profile domain errors.
var (
	// ErrInvalidHandle is returned when the handle is not 3-20 letters, digits or underscores.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrAvatarNotFound is returned when the avatar is not in the catalog.
	ErrAvatarNotFound = errors.New("avatar not found")

	// ErrProfileNotSetup is returned when an operation needs a completed profile.
	ErrProfileNotSetup = errors.New("profile not set up")

	// ErrInvalidName is returned when a display name is blank or too long.
	ErrInvalidName = errors.New("invalid name")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHandle  ProfileErrorCode = "PRF-010001"
	ErrCodeAvatarNotFound ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidName    ProfileErrorCode = "PRF-010003"

	// State errors (02XXXX)
	ErrCodeProfileNotSetup ProfileErrorCode = "PRF-020001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
