package employee

import "context"

// EmployeeService defines business logic for directory management
type EmployeeService interface {
	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Get retrieves a single employee by internal id
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByTagID resolves a raw NFC tag identifier to an employee
	GetByTagID(ctx context.Context, rawTagID string) (EmployeeResponse, error)

	// Create registers a new employee; the tag identifier is normalized
	// and must not collide with an existing one
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update applies a partial update to an employee record
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee and, by cascade, all their attendance events
	Delete(ctx context.Context, id string) error
}
