package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/app/models/dto"
	"github.com/hrmslite/backend/internal/app/repositories"
	"github.com/hrmslite/backend/internal/pkg/apperrors"
	"github.com/hrmslite/backend/internal/pkg/helpers"
)

// AttendanceService handles attendance-related operations
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// ListAttendance retrieves attendance records with optional employee-id
// and exact-date filters (AND semantics).
func (s *AttendanceService) ListAttendance(ctx context.Context, filter *dto.AttendanceFilter) ([]*models.AttendanceRecord, error) {
	records, err := s.attendanceRepo.List(ctx, filter.EmployeeID, filter.Date)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	if records == nil {
		records = []*models.AttendanceRecord{}
	}
	return records, nil
}

// MarkAttendance records a Present/Absent mark for one employee-day. A
// second mark for the same (employee, date) overwrites the existing
// record's status and write time, keeping its id.
func (s *AttendanceService) MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	if !helpers.ValidDate(req.Date) {
		return nil, apperrors.NewValidationError("date", apperrors.ErrInvalidDate.Error())
	}

	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())
	}

	record := &models.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     status,
		CreatedAt:  helpers.NowStamp(),
	}

	if err := s.attendanceRepo.Mark(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrEmployeeNotFound, "Employee not found")
		}
		return nil, fmt.Errorf("error marking attendance: %w", err)
	}

	s.logger.Info().
		Str("id", record.ID).
		Str("employeeId", record.EmployeeID).
		Str("date", record.Date).
		Str("status", string(record.Status)).
		Msg("Attendance marked")

	return record, nil
}

// DeleteAttendance removes a single attendance record.
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAttendanceNotFound) {
			return apperrors.NewNotFoundError(apperrors.ErrAttendanceNotFound, "Attendance record not found")
		}
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("Attendance record deleted")
	return nil
}
