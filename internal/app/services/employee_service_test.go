package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
)

func createReq(employeeID, fullName, email, department string) *dto.CreateEmployeeRequest {
	return &dto.CreateEmployeeRequest{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      email,
		Department: department,
	}
}

func TestCreateEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "  Jane Doe  ", "Jane.Doe@Example.com", " Engineering "))
	require.NoError(t, err)

	assert.NotEmpty(t, employee.ID)
	assert.NotEmpty(t, employee.CreatedAt)
	assert.Equal(t, "EMP001", employee.EmployeeID)
	assert.Equal(t, "Jane Doe", employee.FullName, "free-text fields are trimmed")
	assert.Equal(t, "jane.doe@example.com", employee.Email, "email is stored lower-cased")
	assert.Equal(t, "Engineering", employee.Department)

	got, err := env.employees.GetEmployee(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, 0, got.PresentDays)
	assert.Equal(t, 0, got.AbsentDays)
}

func TestCreateEmployeeConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     *dto.CreateEmployeeRequest
		wantErr error
	}{
		{
			name:    "duplicate employee_id",
			req:     createReq("EMP001", "John Smith", "john@example.com", "Sales"),
			wantErr: apperrors.ErrEmployeeIDExists,
		},
		{
			name:    "duplicate email different case",
			req:     createReq("EMP002", "John Smith", "JANE@EXAMPLE.COM", "Sales"),
			wantErr: apperrors.ErrEmailExists,
		},
		{
			name: "employee_id checked before email",
			req:  createReq("EMP001", "John Smith", "jane@example.com", "Sales"),
			// Both collide; the employee_id conflict must win.
			wantErr: apperrors.ErrEmployeeIDExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.employees.CreateEmployee(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// The failed attempts must not have written anything.
	employees, err := env.employees.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestCreateEmployeeValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       *dto.CreateEmployeeRequest
		wantField string
	}{
		{"whitespace employee_id", createReq("   ", "Jane Doe", "jane@example.com", "Engineering"), "employee_id"},
		{"whitespace full_name", createReq("EMP001", "   ", "jane@example.com", "Engineering"), "full_name"},
		{"whitespace department", createReq("EMP001", "Jane Doe", "jane@example.com", "  "), "department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.employees.CreateEmployee(ctx, tt.req)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var custom *apperrors.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, tt.wantField, custom.Field)
		})
	}
}

func TestListEmployeesNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)
	second, err := env.employees.CreateEmployee(ctx, createReq("EMP002", "John Smith", "john@example.com", "Sales"))
	require.NoError(t, err)

	employees, err := env.employees.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, second.ID, employees[0].ID)
	assert.Equal(t, first.ID, employees[1].ID)
}

func TestGetEmployeeNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.employees.GetEmployee(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)

	for _, date := range []string{"2024-01-15", "2024-01-16"} {
		_, err := env.attendance.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
			EmployeeID: employee.ID,
			Date:       date,
			Status:     "Present",
		})
		require.NoError(t, err)
	}

	require.NoError(t, env.employees.DeleteEmployee(ctx, employee.ID))

	_, err = env.employees.GetEmployee(ctx, employee.ID)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)

	records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{EmployeeID: employee.ID})
	require.NoError(t, err)
	assert.Empty(t, records, "attendance records must be removed with their employee")
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.employees.DeleteEmployee(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}
