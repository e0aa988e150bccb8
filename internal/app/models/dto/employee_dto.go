package dto

// CreateEmployeeRequest represents employee creation data. Free-text
// fields are trimmed by the service before persistence.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	FullName   string `json:"full_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,max=100"`
}
