package dto

import "time"

// Meta is the metadata included in every API response.
type Meta struct {
	RequestID        string    `json:"request_id"`
	Timestamp        time.Time `json:"timestamp"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}

// NewMeta builds response metadata for a request started at start.
func NewMeta(requestID string, start time.Time) Meta {
	return Meta{
		RequestID:        requestID,
		Timestamp:        time.Now().UTC(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}

// SuccessResponse is the standard success envelope.
// @Description Standard success response wrapper
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    Meta        `json:"meta"`
}

// NewSuccessResponse wraps data in the success envelope.
func NewSuccessResponse(data interface{}, meta Meta) *SuccessResponse {
	return &SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	}
}

// ErrorDetail carries the error code, message and optional details.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the standard error envelope.
// @Description Standard error response wrapper
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
	Meta    Meta        `json:"meta"`
}

// NewErrorResponse wraps an error detail in the error envelope.
func NewErrorResponse(code, message string, details map[string]interface{}, meta Meta) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: meta,
	}
}
