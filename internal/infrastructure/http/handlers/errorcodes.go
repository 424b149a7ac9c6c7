package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeModelNotFound    = "model_not_found"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeInternal         = "internal_error"
)
