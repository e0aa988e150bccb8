package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
)

func markReq(employeeID, date, status string) *dto.MarkAttendanceRequest {
	return &dto.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
}

func TestMarkAttendance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)

	record, err := env.attendance.MarkAttendance(ctx, markReq(employee.ID, "2024-01-15", "Present"))
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, employee.ID, record.EmployeeID)
	assert.Equal(t, "2024-01-15", record.Date)
	assert.Equal(t, models.StatusPresent, record.Status)
}

func TestMarkAttendanceUpsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)

	first, err := env.attendance.MarkAttendance(ctx, markReq(employee.ID, "2024-01-15", "Present"))
	require.NoError(t, err)

	second, err := env.attendance.MarkAttendance(ctx, markReq(employee.ID, "2024-01-15", "Absent"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "a repeated mark keeps the existing record's id")

	records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{EmployeeID: employee.ID})
	require.NoError(t, err)
	require.Len(t, records, 1, "no duplicate row for the same employee and date")
	assert.Equal(t, models.StatusAbsent, records[0].Status)

	require.NoError(t, env.employees.DeleteEmployee(ctx, employee.ID))

	records, err = env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{EmployeeID: employee.ID})
	require.NoError(t, err)
	assert.Empty(t, records, "the upserted record goes with the employee")
}

func TestMarkAttendanceEmployeeNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.attendance.MarkAttendance(ctx, markReq("no-such-id", "2024-01-15", "Present"))
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)

	records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, records, "a rejected mark must not write a row")
}

func TestMarkAttendanceValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		date   string
		status string
	}{
		{"malformed date", "15-01-2024", "Present"},
		{"non-date", "not-a-date", "Present"},
		{"unpadded date", "2024-1-5", "Present"},
		{"bad status", "2024-01-15", "Late"},
		{"lowercase status", "2024-01-15", "present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.attendance.MarkAttendance(ctx, markReq(employee.ID, tt.date, tt.status))
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestListAttendanceFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	jane, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)
	john, err := env.employees.CreateEmployee(ctx, createReq("EMP002", "John Smith", "john@example.com", "Sales"))
	require.NoError(t, err)

	marks := []struct {
		employeeID string
		date       string
		status     string
	}{
		{jane.ID, "2024-01-15", "Present"},
		{jane.ID, "2024-01-16", "Absent"},
		{john.ID, "2024-01-15", "Absent"},
	}
	for _, m := range marks {
		_, err := env.attendance.MarkAttendance(ctx, markReq(m.employeeID, m.date, m.status))
		require.NoError(t, err)
	}

	t.Run("no filters returns everything date-descending", func(t *testing.T) {
		records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "2024-01-16", records[0].Date)
	})

	t.Run("date filter returns that date for every employee", func(t *testing.T) {
		records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{Date: "2024-01-15"})
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, record := range records {
			assert.Equal(t, "2024-01-15", record.Date)
		}
	})

	t.Run("employee filter", func(t *testing.T) {
		records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{EmployeeID: jane.ID})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{EmployeeID: john.ID, Date: "2024-01-15"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, john.ID, records[0].EmployeeID)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{Date: "2030-01-01"})
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestDeleteAttendance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.employees.CreateEmployee(ctx, createReq("EMP001", "Jane Doe", "jane@example.com", "Engineering"))
	require.NoError(t, err)

	record, err := env.attendance.MarkAttendance(ctx, markReq(employee.ID, "2024-01-15", "Present"))
	require.NoError(t, err)

	require.NoError(t, env.attendance.DeleteAttendance(ctx, record.ID))

	records, err := env.attendance.ListAttendance(ctx, &dto.AttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, env.attendance.DeleteAttendance(ctx, record.ID), apperrors.ErrAttendanceNotFound)
}
