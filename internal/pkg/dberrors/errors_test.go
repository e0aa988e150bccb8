package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := errors.New("constraint failed: UNIQUE constraint failed: employees.employee_id (1555)")

	assert.True(t, IsUniqueViolation(uniqueErr, "employees.employee_id"))
	assert.False(t, IsUniqueViolation(uniqueErr, "employees.email"))
	assert.False(t, IsUniqueViolation(errors.New("database is locked"), "employees.employee_id"))
	assert.False(t, IsUniqueViolation(nil, "employees.employee_id"))
}

func TestIsUniqueViolationOnWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("error creating employee: %w",
		errors.New("constraint failed: UNIQUE constraint failed: employees.email (2067)"))

	assert.True(t, IsUniqueViolation(wrapped, "employees.email"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	assert.False(t, IsForeignKeyViolation(errors.New("no such table: attendance")))
	assert.False(t, IsForeignKeyViolation(nil))
}
