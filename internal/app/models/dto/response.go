package dto

import "time"

// APIResponse is the standard response envelope. Exactly one of Data and
// Error is set.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewDataResponse creates a success envelope around a payload
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates an error envelope around an error detail
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// InfoResponse is the root health/info payload
type InfoResponse struct {
	Message string `json:"message" example:"HRMS Lite API is running"`
	Version string `json:"version" example:"1.0.0"`
	Status  string `json:"status" example:"ok"`
}
