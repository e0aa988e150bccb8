package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/db"
)

// Attendance error types
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	store *db.SQLite
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(store *db.SQLite) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

// List retrieves attendance records, optionally filtered by employee id
// and/or exact date (AND semantics). Ordered by date descending, then by
// record write time descending.
func (r *AttendanceRepository) List(ctx context.Context, employeeID, date string) ([]*models.AttendanceRecord, error) {
	query := `SELECT id, employee_id, date, status, created_at FROM attendance WHERE 1=1`
	var args []interface{}

	if employeeID != "" {
		query += ` AND employee_id = ?`
		args = append(args, employeeID)
	}
	if date != "" {
		query += ` AND date = ?`
		args = append(args, date)
	}

	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.store.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.Status,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Mark upserts an attendance record keyed on (employee_id, date). The
// employee-existence check and the write share one transaction, with the
// unique constraint as the safety net under concurrent identical marks.
// On conflict the existing row keeps its id; status and created_at are
// overwritten. record.ID is set to the effective id.
func (r *AttendanceRepository) Mark(ctx context.Context, record *models.AttendanceRecord) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)`,
			record.EmployeeID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking employee existence: %w", err)
		}
		if !exists {
			return ErrEmployeeNotFound
		}

		query := `
			INSERT INTO attendance (id, employee_id, date, status, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(employee_id, date) DO UPDATE SET
				status = excluded.status,
				created_at = excluded.created_at
			RETURNING id
		`

		err = tx.QueryRowContext(ctx, query,
			record.ID,
			record.EmployeeID,
			record.Date,
			record.Status,
			record.CreatedAt,
		).Scan(&record.ID)
		if err != nil {
			return fmt.Errorf("error upserting attendance record: %w", err)
		}

		return nil
	})
}

// Delete removes an attendance record by id.
func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.store.DB.ExecContext(ctx, `DELETE FROM attendance WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return ErrAttendanceNotFound
	}

	return nil
}
