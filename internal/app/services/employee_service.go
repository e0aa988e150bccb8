package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
	"github.com/hrmslite/backend/internal/pkg/dberrors"
	"github.com/hrmslite/backend/internal/pkg/helpers"
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
	logger       zerolog.Logger
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo *repositories.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// ListEmployees retrieves all employees with their attendance summary,
// newest first.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*models.EmployeeWithAttendance, error) {
	employees, err := s.employeeRepo.ListWithSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	if employees == nil {
		employees = []*models.EmployeeWithAttendance{}
	}
	return employees, nil
}

// GetEmployee retrieves one employee with attendance summary.
func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (*models.EmployeeWithAttendance, error) {
	employee, err := s.employeeRepo.GetWithSummary(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrEmployeeNotFound, "Employee not found")
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// CreateEmployee validates, normalizes and persists a new employee.
// employee_id uniqueness is checked before email uniqueness, and both
// before the insert; the database constraints arbitrate races.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	employee, err := normalizeEmployee(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, employee.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("error checking employee ID: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmployeeIDExists
	}

	exists, err = s.employeeRepo.ExistsByEmail(ctx, employee.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	employee.ID = uuid.NewString()
	employee.CreatedAt = helpers.NowStamp()

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		// A concurrent create can slip past the pre-checks; the unique
		// constraints report it here.
		if dberrors.IsUniqueViolation(err, "employees.employee_id") {
			return nil, apperrors.ErrEmployeeIDExists
		}
		if dberrors.IsUniqueViolation(err, "employees.email") {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	s.logger.Info().
		Str("id", employee.ID).
		Str("employeeId", employee.EmployeeID).
		Msg("Employee created")

	return employee, nil
}

// DeleteEmployee removes an employee and cascades to their attendance
// records.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.NewNotFoundError(apperrors.ErrEmployeeNotFound, "Employee not found")
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("Employee deleted")
	return nil
}

// normalizeEmployee trims free-text fields, lower-cases the email and
// rejects values that are empty once trimmed. Length and email-shape
// checks happen at binding time.
func normalizeEmployee(req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	employee := &models.Employee{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Department: strings.TrimSpace(req.Department),
	}

	for field, value := range map[string]string{
		"employee_id": employee.EmployeeID,
		"full_name":   employee.FullName,
		"email":       employee.Email,
		"department":  employee.Department,
	} {
		if value == "" {
			return nil, apperrors.NewValidationError(field, field+" cannot be empty")
		}
	}

	return employee, nil
}
