package error

import "errors"

// State store errors. These are logged by the engine and never surfaced
// to callers of a mutation.
var (
	// ErrStateUnavailable is returned when the backing store cannot be reached.
	ErrStateUnavailable = errors.New("state store unavailable")

	// ErrCorruptSlice is returned when a stored slice cannot be decoded.
	ErrCorruptSlice = errors.New("corrupt state slice")
)

// StateErrorCode defines error codes for state store errors.
type StateErrorCode string

const (
	ErrCodeStateRead    StateErrorCode = "STATE-010001"
	ErrCodeStateWrite   StateErrorCode = "STATE-010002"
	ErrCodeStateDelete  StateErrorCode = "STATE-010003"
	ErrCodeCorruptSlice StateErrorCode = "STATE-020001"
)

// StateError represents a state store error with the key involved.
type StateError struct {
	Code StateErrorCode
	Key  string
	Err  error
}

// Error implements the error interface.
func (e *StateError) Error() string {
	msg := string(e.Code) + " " + e.Key
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	return e.Err
}

// NewStateError creates a new StateError.
func NewStateError(code StateErrorCode, key string, err error) *StateError {
	return &StateError{Code: code, Key: key, Err: err}
}
