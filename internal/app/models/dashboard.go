package models

// DepartmentCount is one row of the per-department employee distribution.
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats are the aggregate counts recomputed on every dashboard
// request.
type DashboardStats struct {
	TotalEmployees   int               `json:"total_employees"`
	TotalDepartments int               `json:"total_departments"`
	PresentToday     int               `json:"present_today"`
	AbsentToday      int               `json:"absent_today"`
	TotalPresent     int               `json:"total_present"`
	TotalAbsent      int               `json:"total_absent"`
	Departments      []DepartmentCount `json:"departments"`
}
