package models

// Employee represents a tracked person, identified both by a
// system-generated id and a caller-chosen business identifier.
type Employee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

// EmployeeWithAttendance is an employee joined with aggregate
// present/absent day counts.
type EmployeeWithAttendance struct {
	Employee
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
}
