package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const eventColumns = `id, employee_id, nfc_id, tag_type, tag_time, created_at`

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var ev attendance.Event
	err := row.Scan(
		&ev.ID, &ev.EmployeeID, &ev.TagID, &ev.Kind, &ev.TaggedAt, &ev.CreatedAt,
	)
	return ev, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	event.ID = uuid.Must(uuid.NewV7()).String()
	if event.TaggedAt.IsZero() {
		event.TaggedAt = time.Now()
	}

	query := `
		INSERT INTO attendance_records (id, employee_id, nfc_id, tag_type, tag_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.TagID,
		event.Kind,
		event.TaggedAt,
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return event, nil
}

// GetLatestByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetLatestByEmployee(ctx context.Context, employeeID string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	// Event ids are UUIDv7, so the id ordering breaks timestamp ties in
	// favor of the latest insert.
	query := `
		SELECT ` + eventColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY tag_time DESC, id DESC
		LIMIT 1
	`

	ev, err := scanEvent(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No events recorded yet
		}
		return nil, fmt.Errorf("failed to get latest attendance record: %w", err)
	}

	return &ev, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND ar.tag_time::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND ar.tag_time::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			ar.id, ar.employee_id, ar.nfc_id, ar.tag_type, ar.tag_time, ar.created_at,
			e.name AS employee_name,
			e.department AS employee_department,
			e.position AS employee_position
		FROM attendance_records ar
		LEFT JOIN employees e ON e.id = ar.employee_id
		WHERE %s
		ORDER BY ar.tag_time DESC, ar.id DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		err := rows.Scan(
			&ev.ID, &ev.EmployeeID, &ev.TagID, &ev.Kind, &ev.TaggedAt, &ev.CreatedAt,
			&ev.EmployeeName, &ev.EmployeeDepartment, &ev.EmployeePosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.EventFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND tag_time::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND tag_time::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT `+eventColumns+`
		FROM attendance_records
		WHERE %s
		ORDER BY tag_time DESC, id DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND tag_time >= $2
		  AND tag_time < $3
		ORDER BY tag_time ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListRecentByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY tag_time DESC, id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}

	return nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_records`); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}

	return nil
}

// LockEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	// Transaction-scoped advisory lock; released automatically on
	// commit or rollback.
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeID); err != nil {
		return fmt.Errorf("failed to lock employee: %w", err)
	}

	return nil
}
