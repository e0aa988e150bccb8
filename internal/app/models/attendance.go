package models

// AttendanceStatus is the two-value mark for one employee-day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether the status is one of the allowed values.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord is one Present/Absent mark for one employee on one
// calendar date. There is at most one record per (employee, date); a
// repeated mark overwrites status and created_at in place.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  string           `json:"created_at"`
}
