package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Tag processes one NFC scan: normalize the identifier, resolve the
	// employee, decide check-in vs check-out, append the event
	Tag(ctx context.Context, req TagRequest) (TagResponse, error)

	// List retrieves all events newest-first with an optional date range
	List(ctx context.Context, filter EventFilter) ([]EventResponse, error)

	// ListByEmployee retrieves one employee's events newest-first
	ListByEmployee(ctx context.Context, employeeID string, filter EventFilter) ([]EventResponse, error)

	// Info returns the composite read for a raw tag identifier: profile,
	// today's view, monthly statistics, recent events, latest event
	Info(ctx context.Context, rawTagID string) (InfoResponse, error)

	// Delete removes one event by id
	Delete(ctx context.Context, id string) error
}
