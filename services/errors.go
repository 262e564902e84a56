package services

import (
	"errors"
	"fmt"
)

// Domain rejections. Controllers map these onto HTTP statuses; anything else
// that comes out of a service is an infrastructure error and stays generic.
var (
	ErrInvalidDateRange   = errors.New("invalid_date_range")
	ErrPastStartDate      = errors.New("past_start_date")
	ErrRoomUnavailable    = errors.New("room_unavailable")
	ErrNotFound           = errors.New("not_found")
	ErrAlreadyProcessed   = errors.New("already_processed")
	ErrAlreadyPaid        = errors.New("already_paid")
	ErrAlreadyCancelled   = errors.New("already_cancelled")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidStatus      = errors.New("invalid_status")
)

// DependencyBlockedError rejects a delete that would orphan referencing rows.
// Count is surfaced to the caller so the message can name how many block it.
type DependencyBlockedError struct {
	Entity  string // what the caller tried to delete
	Blocker string // what references it
	Count   int64
}

func (e *DependencyBlockedError) Error() string {
	return fmt.Sprintf("cannot delete %s: %d %s reference(s) exist", e.Entity, e.Count, e.Blocker)
}

// Actor is the authenticated caller, threaded explicitly into every service
// call instead of being read from ambient request state.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
