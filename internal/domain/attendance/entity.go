package attendance

import (
	"time"
)

type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
)

// IsValid reports whether k is one of the two known event kinds.
func (k Kind) IsValid() bool {
	return k == KindCheckIn || k == KindCheckOut
}

// Event is one immutable entry in the attendance ledger. TagID is the
// normalized identifier captured at tagging time; it may drift from the
// employee's current identifier if that is later changed.
type Event struct {
	ID         string
	EmployeeID string
	TagID      string
	Kind       Kind
	TaggedAt   time.Time
	CreatedAt  time.Time

	// Joined for listings
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}
