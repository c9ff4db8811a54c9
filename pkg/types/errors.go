package types

import (
	"errors"
	"fmt"
)

var (
	ErrQuestNotFound    = errors.New("quest not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrDreamerNotFound  = errors.New("dreamer not found")
	ErrSponsorNotFound  = errors.New("sponsor not found")
	ErrStudentNotFound  = errors.New("academy student not found")
	ErrDonationNotFound = errors.New("donation not found")
	ErrNoAnnouncement   = errors.New("no announcement published")

	// ErrNotSynced marks the defined "never imported" state of the
	// published snapshot blob, distinct from a fetch failure.
	ErrNotSynced = errors.New("content snapshot not yet synced")
)

// StoreError wraps a remote store failure with the collection and
// operation it came from. The store layer performs no retries; retry
// policy belongs to the caller.
type StoreError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(collection, op string, err error) *StoreError {
	return &StoreError{Collection: collection, Op: op, Err: err}
}

// ValidationError is caller-supplied data failing a precondition. It is
// raised before any remote call, so no partial state change follows it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReconciliationGap reports a ledger operation whose donation write
// committed but whose goal balance update failed. The committed write is
// not undone; the reconciler retries pending balance updates later.
type ReconciliationGap struct {
	DonationID    string
	SponsorshipID string
	Err           error
}

func (e *ReconciliationGap) Error() string {
	return fmt.Sprintf("donation %s committed but balance update for %s failed: %v",
		e.DonationID, e.SponsorshipID, e.Err)
}

func (e *ReconciliationGap) Unwrap() error { return e.Err }
