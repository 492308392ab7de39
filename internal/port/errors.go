package port

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// CollaboratorError is a failed call to the hosted backend.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
