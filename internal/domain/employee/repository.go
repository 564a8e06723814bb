package employee

import "context"

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByTagID looks up an employee by normalized NFC tag identifier.
	// Returns ErrEmployeeNotFound when no employee carries the tag.
	GetByTagID(ctx context.Context, tagID string) (Employee, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Delete removes the employee; attendance events cascade at the
	// storage layer.
	Delete(ctx context.Context, id string) error

	// DeleteAll clears the directory. Used by administrative reseeding.
	DeleteAll(ctx context.Context) error
}
