package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/nfc"
	"golang.org/x/sync/errgroup"
)

const (
	// workdayStartHour is the fixed on-time threshold: a check-in at or
	// after this hour counts as late. Not configurable per employee.
	workdayStartHour = 9

	// defaultRecentLimit is how many recent events the info view returns.
	defaultRecentLimit = 5
)

// TxRunner runs a function inside a storage transaction. Repository calls
// made through the context handed to fn join the transaction.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AttendanceServiceImpl struct {
	tx             TxRunner
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	tx TxRunner,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Helper function to map Event to EventResponse
func mapEventToResponse(ev attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:                 ev.ID,
		EmployeeID:         ev.EmployeeID,
		TagID:              ev.TagID,
		TagType:            ev.Kind,
		TaggedAt:           ev.TaggedAt,
		CreatedAt:          ev.CreatedAt,
		EmployeeName:       ev.EmployeeName,
		EmployeeDepartment: ev.EmployeeDepartment,
		EmployeePosition:   ev.EmployeePosition,
	}
}

func mapEventsToResponses(events []attendance.Event) []attendance.EventResponse {
	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapEventToResponse(ev))
	}
	return responses
}

// resolveKind decides the kind of the next event from the latest one: no
// history means check-in, otherwise the strict two-state toggle.
func resolveKind(latest *attendance.Event) attendance.Kind {
	if latest == nil {
		return attendance.KindCheckIn
	}
	if latest.Kind == attendance.KindCheckIn {
		return attendance.KindCheckOut
	}
	return attendance.KindCheckIn
}

// Tag implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Tag(ctx context.Context, req attendance.TagRequest) (attendance.TagResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TagResponse{}, err
	}

	if !nfc.IsValid(req.TagID) {
		return attendance.TagResponse{}, nfc.ErrInvalidTagID
	}
	normalized := nfc.Normalize(req.TagID)

	emp, err := s.employeeRepo.GetByTagID(ctx, normalized)
	if err != nil {
		return attendance.TagResponse{}, err
	}

	var created attendance.Event
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		// Serialize read-latest + append per employee so two
		// near-simultaneous scans cannot both infer the same kind.
		if err := s.attendanceRepo.LockEmployee(txCtx, emp.ID); err != nil {
			return err
		}

		var kind attendance.Kind
		if req.TagType != nil {
			// Explicit kind is used verbatim; history is not consulted.
			// Repeated same-kind events are accepted.
			kind = attendance.Kind(*req.TagType)
		} else {
			latest, err := s.attendanceRepo.GetLatestByEmployee(txCtx, emp.ID)
			if err != nil {
				return err
			}
			kind = resolveKind(latest)
		}

		event := attendance.Event{
			EmployeeID: emp.ID,
			TagID:      normalized,
			Kind:       kind,
		}
		if req.TaggedAt != nil {
			event.TaggedAt = *req.TaggedAt
		}

		created, err = s.attendanceRepo.Create(txCtx, event)
		return err
	})
	if err != nil {
		return attendance.TagResponse{}, fmt.Errorf("failed to record tag event: %w", err)
	}

	message := "Checked in successfully"
	if created.Kind == attendance.KindCheckOut {
		message = "Checked out successfully"
	}

	return attendance.TagResponse{
		ID:           created.ID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		TagID:        created.TagID,
		TagType:      created.Kind,
		TaggedAt:     created.TaggedAt,
		Message:      message,
	}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapEventsToResponses(events), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, filter attendance.EventFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	events, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	return mapEventsToResponses(events), nil
}

// Info implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Info(ctx context.Context, rawTagID string) (attendance.InfoResponse, error) {
	if !nfc.IsValid(rawTagID) {
		return attendance.InfoResponse{}, nfc.ErrInvalidTagID
	}
	normalized := nfc.Normalize(rawTagID)

	emp, err := s.employeeRepo.GetByTagID(ctx, normalized)
	if err != nil {
		return attendance.InfoResponse{}, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		todayEvents []attendance.Event
		monthEvents []attendance.Event
		recent      []attendance.Event
		latest      *attendance.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todayEvents, err = s.attendanceRepo.ListByEmployeeBetween(gctx, emp.ID, dayStart, dayStart.AddDate(0, 0, 1))
		return err
	})
	g.Go(func() error {
		var err error
		monthEvents, err = s.attendanceRepo.ListByEmployeeBetween(gctx, emp.ID, monthStart, monthStart.AddDate(0, 1, 0))
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.attendanceRepo.ListRecentByEmployee(gctx, emp.ID, defaultRecentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.attendanceRepo.GetLatestByEmployee(gctx, emp.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.InfoResponse{}, fmt.Errorf("failed to build info view: %w", err)
	}

	var lastTag *attendance.LastTag
	if latest != nil {
		lastTag = &attendance.LastTag{TagType: latest.Kind, Time: latest.TaggedAt}
	}

	return attendance.InfoResponse{
		Employee: employee.EmployeeResponse{
			ID:         emp.ID,
			TagID:      emp.TagID,
			TagDisplay: nfc.Format(emp.TagID, nfc.DefaultSeparator),
			Name:       emp.Name,
			Department: emp.Department,
			Position:   emp.Position,
			Email:      emp.Email,
			Phone:      emp.Phone,
			CreatedAt:  emp.CreatedAt,
			UpdatedAt:  emp.UpdatedAt,
		},
		Today:         buildTodayView(todayEvents, now),
		MonthlyStats:  buildMonthlyStats(monthEvents, now),
		RecentRecords: mapEventsToResponses(recent),
		LastTag:       lastTag,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// buildTodayView derives the daily summary from today's events, which
// arrive ordered ascending. The first check-in and check-out are the
// first found while scanning that order.
func buildTodayView(events []attendance.Event, now time.Time) attendance.TodayView {
	view := attendance.TodayView{
		Date:    now.Format("2006-01-02"),
		Records: mapEventsToResponses(events),
	}

	for i := range view.Records {
		record := view.Records[i]
		switch record.TagType {
		case attendance.KindCheckIn:
			view.IsCheckedIn = true
			if view.CheckIn == nil {
				view.CheckIn = &record
			}
		case attendance.KindCheckOut:
			view.IsCheckedOut = true
			if view.CheckOut == nil {
				view.CheckOut = &record
			}
		}
	}

	return view
}

// buildMonthlyStats aggregates the current month's events: distinct days
// with at least one event, per-kind counts, and the on-time/late split
// for check-ins against the workday start hour.
func buildMonthlyStats(events []attendance.Event, now time.Time) attendance.MonthlyStats {
	stats := attendance.MonthlyStats{
		Month: now.Format("2006-01"),
	}

	days := make(map[string]struct{})
	for _, ev := range events {
		days[ev.TaggedAt.Format("2006-01-02")] = struct{}{}

		switch ev.Kind {
		case attendance.KindCheckIn:
			stats.CheckInCount++
			if ev.TaggedAt.Hour() < workdayStartHour {
				stats.OnTimeCount++
			} else {
				stats.LateCount++
			}
		case attendance.KindCheckOut:
			stats.CheckOutCount++
		}
	}
	stats.DaysPresent = len(days)

	return stats
}
