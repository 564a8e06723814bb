package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/nfc"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
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
	newEmployee.ID = fmt.Sprintf("emp-%d", len(r.employees)+1)
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.TagID != nil {
		emp.TagID = *req.TagID
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	emp.UpdatedAt = time.Now()
	r.employees[req.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) DeleteAll(ctx context.Context) error {
	r.employees = make(map[string]employee.Employee)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreate_NormalizesTagID(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		TagID: "04:a1:b2:c3:d4:e5:f6",
		Name:  "Kim Chulsoo",
	})

	require.NoError(t, err)
	assert.Equal(t, "04A1B2C3D4E5F6", created.TagID)
	assert.Equal(t, "04:A1:B2:C3:D4:E5:F6", created.TagDisplay)
	assert.Equal(t, "Kim Chulsoo", created.Name)
	assert.NotEmpty(t, created.ID)
}

func TestCreate_DuplicateTagAcrossRawForms(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		TagID: "04A1B2C3D4E5F6",
		Name:  "Kim Chulsoo",
	})
	require.NoError(t, err)

	// Different raw spelling of the same tag still collides
	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		TagID: "04-a1-b2-c3-d4-e5-f6",
		Name:  "Lee Younghee",
	})
	assert.ErrorIs(t, err, employee.ErrTagIDExists)
}

func TestCreate_InvalidTagID(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	cases := []struct {
		name  string
		tagID string
	}{
		{"too short", "04A1B2"},
		{"too long after normalization", "0123456789ABCDEF0123456789ABCDEF0"},
		{"separators only", ":::::::::"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
				TagID: c.tagID,
				Name:  "Kim Chulsoo",
			})
			assert.ErrorIs(t, err, nfc.ErrInvalidTagID)
		})
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{})

	assert.Error(t, err)
}

func TestGetByTagID_AcceptsRawForm(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		TagID: "04A1B2C3D4E5F6",
		Name:  "Kim Chulsoo",
	})
	require.NoError(t, err)

	found, err := svc.GetByTagID(ctx, "04 a1 b2 c3 d4 e5 f6")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetByTagID_Unknown(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.GetByTagID(context.Background(), "FFFFFFFFFFFFFF")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		TagID:      "04A1B2C3D4E5F6",
		Name:       "Kim Chulsoo",
		Department: strPtr("Engineering"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Position: strPtr("Senior Developer"),
	})
	require.NoError(t, err)

	// Untouched fields survive
	assert.Equal(t, "Kim Chulsoo", updated.Name)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Engineering", *updated.Department)
	require.NotNil(t, updated.Position)
	assert.Equal(t, "Senior Developer", *updated.Position)
}

func TestUpdate_TagIDNormalizedAndChecked(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		TagID: "04A1B2C3D4E5F6",
		Name:  "Kim Chulsoo",
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		TagID: "04B2C3D4E5F6A1",
		Name:  "Lee Younghee",
	})
	require.NoError(t, err)

	// Moving to another employee's tag is a conflict
	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:    second.ID,
		TagID: strPtr("04:a1:b2:c3:d4:e5:f6"),
	})
	assert.ErrorIs(t, err, employee.ErrTagIDExists)

	// Re-submitting your own tag in a different raw form is fine
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:    first.ID,
		TagID: strPtr("04:a1:b2:c3:d4:e5:f6"),
	})
	require.NoError(t, err)
	assert.Equal(t, "04A1B2C3D4E5F6", updated.TagID)
}

func TestUpdate_UnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:   "emp-999",
		Name: strPtr("Nobody"),
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDelete_Unknown(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	err := svc.Delete(context.Background(), "emp-999")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
