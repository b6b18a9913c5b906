package core

import (
	"errors"
	"fmt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that no row matched the given id.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

const (
	ConstraintUniqueUsername = "unique username"
	ConstraintContactOwner   = "contact owner"
)

type ConstraintViolation struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Constraint, e.Err)
}

func (e *ConstraintViolation) Unwrap() error {
	return e.Err
}

// StorageError wraps any failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
