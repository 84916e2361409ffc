package error

import "errors"

var (
	ErrEmailJobNotFound = errors.New("email job not found")
	ErrInvalidTemplate  = errors.New("invalid email template")
)

// EmailErrorCode identifies milestone email failures.
// Format: EMAIL-XXYYYY, XX = 01 queue, 02 delivery, 03 template.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError is a coded failure from the queue, the renderer or the provider.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailFailure reports whether err must not be retried.
func IsPermanentEmailFailure(err error) bool {
	var emailErr *EmailError
	if !errors.As(err, &emailErr) {
		return false
	}
	return emailErr.Code == ErrCodePermanentEmailFailure || emailErr.Code == ErrCodeInvalidTemplate
}
