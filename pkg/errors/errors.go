package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError is returned when a store, section or item does not exist.
type ResourceNotFoundError struct {
	resource string
	id       any
}

func (e *ResourceNotFoundError) Error() string {
	if e.id == nil {
		return fmt.Sprintf("%s not found", e.resource)
	}
	return fmt.Sprintf("%s %v not found", e.resource, e.id)
}

func NewResourceNotFoundError(resource string, id any) error {
	return &ResourceNotFoundError{resource: resource, id: id}
}

func NewStoreNotFoundError(id int64) error {
	return NewResourceNotFoundError("store", id)
}

func NewSectionNotFoundError(id int64) error {
	return NewResourceNotFoundError("section", id)
}

func NewItemNotFoundError(id int64) error {
	return NewResourceNotFoundError("item", id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ValidationError reports a request that can never succeed as sent.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// ConflictError reports a request that contradicts existing state,
// e.g. a section that belongs to a different store.
type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string {
	return e.msg
}

func NewSectionStoreMismatchError(sectionID, storeID int64) error {
	return &ConflictError{msg: fmt.Sprintf("section %d doesn't belong to store %d", sectionID, storeID)}
}

func NewConflictError(format string, args ...any) error {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// CommitError wraps a failed backend commit issued by the board engine.
type CommitError struct {
	op  string
	err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("failed to commit %s: %v", e.op, e.err)
}

func (e *CommitError) Unwrap() error {
	return e.err
}

func NewCommitError(op string, err error) error {
	return &CommitError{op: op, err: err}
}

func IsCommitError(err error) bool {
	var e *CommitError
	return errors.As(err, &e)
}

// UnexpectedStatusError is returned by the HTTP client for status codes it has no mapping for.
type UnexpectedStatusError struct {
	Status     string
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}

func NewUnexpectedStatusError(status string, code int) error {
	return &UnexpectedStatusError{Status: status, StatusCode: code}
}

// IsTransientError reports whether err is worth retrying: server side failures only.
func IsTransientError(err error) bool {
	var e *UnexpectedStatusError
	if errors.As(err, &e) {
		return e.StatusCode >= 500
	}
	return false
}
