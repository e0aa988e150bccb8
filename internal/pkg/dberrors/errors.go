package dberrors

import "strings"

// IsUniqueViolation checks if the error is a SQLite unique-constraint
// violation on the given column ("table.column"). The modernc driver
// surfaces these as "UNIQUE constraint failed: table.column" messages,
// so the match is textual.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// IsForeignKeyViolation checks if the error is a SQLite foreign-key
// constraint violation.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
