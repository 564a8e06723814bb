package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
	"github.com/tagpoint/attendance-backend-go/internal/fixtures"
)

// TxRunner runs a function inside a storage transaction.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SeedResult struct {
	Employees int `json:"employees"`
	Events    int `json:"events"`
}

// SeedService replaces all data with the demo dataset.
type SeedService interface {
	// Reseed clears the directory and ledger and repopulates both inside
	// a single transaction. A failure rolls everything back; partial
	// seed state is never observable.
	Reseed(ctx context.Context) (SeedResult, error)
}

type seedServiceImpl struct {
	tx             TxRunner
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewSeedService(
	tx TxRunner,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) SeedService {
	return &seedServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Reseed implements SeedService.
func (s *seedServiceImpl) Reseed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.employeeRepo.DeleteAll(txCtx); err != nil {
			return err
		}

		idByTag := make(map[string]string)
		for _, emp := range fixtures.SampleEmployees() {
			created, err := s.employeeRepo.Create(txCtx, emp)
			if err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", emp.Name, err)
			}
			idByTag[created.TagID] = created.ID
			result.Employees++
		}

		for _, event := range fixtures.SampleEvents(idByTag, time.Now()) {
			if _, err := s.attendanceRepo.Create(txCtx, event); err != nil {
				return fmt.Errorf("failed to seed attendance record: %w", err)
			}
			result.Events++
		}

		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	return result, nil
}
