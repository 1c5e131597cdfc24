package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup or mutation against an absent record.
type ErrNotFound struct {
	Collection CollectionName
	ID         string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Collection, e.ID)
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

// ErrDuplicateAttendance reports a create for a (date, representative) pair
// that already has a record. The uniqueness invariant is enforced by the
// repository itself, not left to callers.
type ErrDuplicateAttendance struct {
	Date             string
	RepresentativeID string
}

func (e ErrDuplicateAttendance) Error() string {
	return fmt.Sprintf("attendance for %s on %s already recorded", e.RepresentativeID, e.Date)
}

// Check-in/check-out protocol failures. The reason strings are surfaced
// verbatim to callers.
var (
	ErrAlreadyCheckedIn  = errors.New("Already checked in today")
	ErrNoCheckInToday    = errors.New("No check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("Already checked out today")
)
