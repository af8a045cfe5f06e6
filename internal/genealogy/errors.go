package genealogy

import (
	"errors"
	"fmt"
)

var (
	// ErrVirusNotFound is returned when a referenced identifier is absent.
	ErrVirusNotFound = errors.New("virus not found")
	// ErrVirusAlreadyCreated is returned by Create on an identifier collision.
	ErrVirusAlreadyCreated = errors.New("virus already created")
	// ErrTriedToRemoveStemVirus is returned by Remove for the stem identifier.
	ErrTriedToRemoveStemVirus = errors.New("tried to remove stem virus")
	// ErrStemCannotHaveParents is returned by Connect when the child is the
	// stem.
	ErrStemCannotHaveParents = errors.New("stem cannot have parents")
	// ErrWouldCycle is returned by Connect when cycle checking is enabled and
	// the new edge would make a virus its own ancestor.
	ErrWouldCycle = errors.New("connection would introduce a cycle")
)

// OpError records the failed operation and the virus it was applied to.
type OpError struct {
	Op  string
	ID  any
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("genealogy: %s %v: %v", e.Op, e.ID, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, id any, err error) error {
	return &OpError{Op: op, ID: id, Err: err}
}
