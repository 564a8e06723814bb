package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
)

type fakeTxRunner struct{}

func (fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	createErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByTagID(ctx context.Context, tagID string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.TagID == tagID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if r.createErr != nil {
		return employee.Employee{}, r.createErr
	}
	newEmployee.ID = fmt.Sprintf("emp-%d", len(r.employees)+1)
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) DeleteAll(ctx context.Context) error {
	r.employees = make(map[string]employee.Employee)
	return nil
}

type fakeAttendanceRepo struct {
	events     []attendance.Event
	deleteAlls int
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	event.ID = fmt.Sprintf("ev-%03d", len(r.events)+1)
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeAttendanceRepo) GetLatestByEmployee(ctx context.Context, employeeID string) (*attendance.Event, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	return r.events, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.EventFilter) ([]attendance.Event, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Event, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return attendance.ErrEventNotFound
}

func (r *fakeAttendanceRepo) DeleteAll(ctx context.Context) error {
	r.deleteAlls++
	r.events = nil
	return nil
}

func (r *fakeAttendanceRepo) LockEmployee(ctx context.Context, employeeID string) error {
	return nil
}

func TestReseed_PopulatesDemoData(t *testing.T) {
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewSeedService(fakeTxRunner{}, employeeRepo, attendanceRepo)

	result, err := svc.Reseed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Employees)
	assert.Len(t, employeeRepo.employees, 3)
	assert.Equal(t, result.Events, len(attendanceRepo.events))
	// Six full days for three employees plus today's three check-ins
	assert.Equal(t, 39, result.Events)

	// Every event points at a seeded employee
	for _, ev := range attendanceRepo.events {
		_, ok := employeeRepo.employees[ev.EmployeeID]
		assert.True(t, ok, "event %s references unknown employee %s", ev.ID, ev.EmployeeID)
	}
}

func TestReseed_ReplacesExistingData(t *testing.T) {
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewSeedService(fakeTxRunner{}, employeeRepo, attendanceRepo)

	_, err := employeeRepo.Create(context.Background(), employee.Employee{TagID: "AABBCCDDEEFF00", Name: "Stale"})
	require.NoError(t, err)
	_, err = attendanceRepo.Create(context.Background(), attendance.Event{TagID: "AABBCCDDEEFF00"})
	require.NoError(t, err)

	result, err := svc.Reseed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, attendanceRepo.deleteAlls)
	assert.Equal(t, 3, result.Employees)
	assert.Len(t, employeeRepo.employees, 3)
	for _, emp := range employeeRepo.employees {
		assert.NotEqual(t, "Stale", emp.Name)
	}
}

func TestReseed_PropagatesCreateFailure(t *testing.T) {
	employeeRepo := newFakeEmployeeRepo()
	employeeRepo.createErr = errors.New("connection reset")
	svc := NewSeedService(fakeTxRunner{}, employeeRepo, &fakeAttendanceRepo{})

	_, err := svc.Reseed(context.Background())

	assert.Error(t, err)
}
