package application

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("application not found")

// AlreadyRegisteredError carries the existing owner's email so the handler
// can name them in the response message.
type AlreadyRegisteredError struct {
	Name       string
	OwnerEmail string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("application with name %s already registered by %s", e.Name, e.OwnerEmail)
}
