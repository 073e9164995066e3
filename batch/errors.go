package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrProcessNotFound is returned when no batch process has the requested id.
	ErrProcessNotFound = errors.New("batch: process not found")

	// ErrSessionNotFound is returned when no batch session matches the lookup.
	ErrSessionNotFound = errors.New("batch: session not found")
)

// Store operations reported in StoreError.Op.
const (
	OpSaveProcess   = "save process"
	OpDeleteProcess = "delete process"
	OpSaveSession   = "save session"
)

// StoreError wraps a failed write against a Store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e == nil {
		return "batch: store error"
	}
	if e.Err == nil {
		return "batch: " + e.Op + " failed"
	}
	return fmt.Sprintf("batch: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FieldError reports a batch row that names a field the target node does not have, or a
// value the field cannot hold.
type FieldError struct {
	NodeID string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e == nil {
		return "batch: field error"
	}
	msg := fmt.Sprintf("batch: node %q field %q", e.NodeID, e.Field)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": unknown field"
}

func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
