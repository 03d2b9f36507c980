package domain

import (
	"errors"
	"fmt"
)

// Business errors. Every operation fails fast with one of these and leaves
// all collections unmodified; only storage failures are represented by the
// StorageError type below.
var (
	ErrValidation        = errors.New("invalid input")
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrDuplicateItem     = errors.New("menu item already exists")
	ErrAuthentication    = errors.New("invalid username or password")
	ErrInvalidAdminCode  = errors.New("invalid admin registration code")
	ErrIndexOutOfRange   = errors.New("position out of range")
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// StorageError reports an unreadable or structurally invalid collection.
// Callers surface it to the operator and abort the in-progress operation.
type StorageError struct {
	Collection string
	Op         string // "load" | "save"
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
