package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrmslite/backend/internal/app/models"
	"github.com/hrmslite/backend/internal/db"
)

// Employee error types
var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// summarySelect joins employees with their aggregate present/absent day
// counts. The LEFT JOIN keeps employees with zero attendance in the result.
const summarySelect = `
	SELECT
		e.id, e.employee_id, e.full_name, e.email, e.department, e.created_at,
		COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present_days,
		COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent_days
	FROM employees e
	LEFT JOIN attendance a ON e.id = a.employee_id
`

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	store *db.SQLite
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(store *db.SQLite) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// ListWithSummary retrieves every employee with attendance counts, newest
// first.
func (r *EmployeeRepository) ListWithSummary(ctx context.Context) ([]*models.EmployeeWithAttendance, error) {
	query := summarySelect + `
	GROUP BY e.id
	ORDER BY e.created_at DESC
	`

	rows, err := r.store.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.EmployeeWithAttendance
	for rows.Next() {
		var employee models.EmployeeWithAttendance
		if err := rows.Scan(
			&employee.ID,
			&employee.EmployeeID,
			&employee.FullName,
			&employee.Email,
			&employee.Department,
			&employee.CreatedAt,
			&employee.PresentDays,
			&employee.AbsentDays,
		); err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetWithSummary retrieves one employee with attendance counts.
func (r *EmployeeRepository) GetWithSummary(ctx context.Context, id string) (*models.EmployeeWithAttendance, error) {
	query := summarySelect + `
	WHERE e.id = ?
	GROUP BY e.id
	`

	var employee models.EmployeeWithAttendance
	err := r.store.DB.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
		&employee.PresentDays,
		&employee.AbsentDays,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return &employee, nil
}

// ExistsByEmployeeID checks if an employee exists with the exact business
// identifier.
func (r *EmployeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.store.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = ?)`,
		employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking employee ID existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks if an employee exists with the email,
// case-insensitively.
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.store.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER(?))`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new employee. Unique-constraint violations propagate to
// the caller for translation.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (id, employee_id, full_name, email, department, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.store.DB.ExecContext(ctx, query,
		employee.ID,
		employee.EmployeeID,
		employee.FullName,
		employee.Email,
		employee.Department,
		employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// Delete removes an employee and all of their attendance records in one
// transaction.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking employee existence: %w", err)
		}
		if !exists {
			return ErrEmployeeNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM attendance WHERE employee_id = ?`, id); err != nil {
			return fmt.Errorf("error deleting attendance records: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM employees WHERE id = ?`, id); err != nil {
			return fmt.Errorf("error deleting employee: %w", err)
		}

		return nil
	})
}
