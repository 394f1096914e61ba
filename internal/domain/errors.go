package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError reports that the service has no entry for a keyword.
type NotFoundError struct {
	Keyword string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find keyword: %s", e.Keyword)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidArgumentError reports an unrecognized console flag. It aborts
// the current command only; the console loop and session state survive.
type InvalidArgumentError struct {
	Token string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Token)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }
