package navigating

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTab  = errors.New("unknown tab")
	ErrNoClient    = errors.New("no client selected")
	ErrInvalidRole = errors.New("invalid role")
)

type NavigationError struct {
	Err     error
	Code    string
	Tab     string
	Details string
}

func (e *NavigationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

func NewNavigationError(err error, code string, tab string) *NavigationError {
	return &NavigationError{
		Err:  err,
		Code: code,
		Tab:  tab,
	}
}
