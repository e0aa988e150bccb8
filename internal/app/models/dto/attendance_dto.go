package dto

// MarkAttendanceRequest represents an attendance mark. EmployeeID is the
// employee's internal id, not the business identifier.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

// AttendanceFilter holds the optional list filters, combined with AND
// semantics.
type AttendanceFilter struct {
	EmployeeID string `form:"employee_id"`
	Date       string `form:"date"`
}
