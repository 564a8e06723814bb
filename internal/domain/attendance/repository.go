package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the append-only event
// ledger. Events are never updated after insertion.
type AttendanceRepository interface {
	// Create appends one event. Consecutive events of the same kind for
	// the same employee are never rejected.
	Create(ctx context.Context, event Event) (Event, error)

	// GetLatestByEmployee returns the event with the maximum timestamp
	// for the employee, ties broken by highest id. Returns nil when the
	// employee has no events.
	GetLatestByEmployee(ctx context.Context, employeeID string) (*Event, error)

	// List returns all events newest-first with employee fields joined,
	// optionally filtered by calendar-date range.
	List(ctx context.Context, filter EventFilter) ([]Event, error)

	// ListByEmployee returns one employee's events newest-first,
	// optionally filtered by calendar-date range.
	ListByEmployee(ctx context.Context, employeeID string, filter EventFilter) ([]Event, error)

	// ListByEmployeeBetween returns events with from <= tag_time < to,
	// ordered tag_time ascending then id ascending. Used for the daily
	// and monthly aggregation windows.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)

	// ListRecentByEmployee returns the limit most recent events.
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Event, error)

	// Delete removes one event by id; returns ErrEventNotFound when no
	// row was removed.
	Delete(ctx context.Context, id string) error

	// DeleteAll clears the ledger. Used by administrative reseeding.
	DeleteAll(ctx context.Context) error

	// LockEmployee takes a transaction-scoped advisory lock keyed by
	// employee id, serializing read-latest + append sequences for the
	// same employee. Only meaningful inside a transaction.
	LockEmployee(ctx context.Context, employeeID string) error
}
