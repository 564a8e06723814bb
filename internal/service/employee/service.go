package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/nfc"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// Helper function to map Employee to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
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
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// GetByTagID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByTagID(ctx context.Context, rawTagID string) (employee.EmployeeResponse, error) {
	if !nfc.IsValid(rawTagID) {
		return employee.EmployeeResponse{}, nfc.ErrInvalidTagID
	}

	emp, err := s.employeeRepo.GetByTagID(ctx, nfc.Normalize(rawTagID))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !nfc.IsValid(req.TagID) {
		return employee.EmployeeResponse{}, nfc.ErrInvalidTagID
	}
	normalized := nfc.Normalize(req.TagID)

	// Reject collisions up front; the unique constraint backstops races.
	_, err := s.employeeRepo.GetByTagID(ctx, normalized)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrTagIDExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check tag id: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		TagID:      normalized,
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.TagID != nil {
		if !nfc.IsValid(*req.TagID) {
			return employee.EmployeeResponse{}, nfc.ErrInvalidTagID
		}
		normalized := nfc.Normalize(*req.TagID)

		if normalized != current.TagID {
			_, err := s.employeeRepo.GetByTagID(ctx, normalized)
			if err == nil {
				return employee.EmployeeResponse{}, employee.ErrTagIDExists
			}
			if !errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check tag id: %w", err)
			}
		}
		req.TagID = &normalized
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
