package catalog

import "errors"

var (
	ErrDuplicateID   = errors.New("id already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")
)

// ValidationError reports a rejected create request. Detected with errors.As
// at the transport boundary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func errMissingField(field string) *ValidationError {
	return &ValidationError{Msg: "missing required field: " + field}
}
