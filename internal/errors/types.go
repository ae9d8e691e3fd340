package errors

// standardized error body; Error is the human-readable message clients display
type ErrorResponse struct {
	Error       string `json:"error"`
	Code        string `json:"code"`
	Details     string `json:"details,omitempty"`
	RawResponse string `json:"rawResponse,omitempty"`
}

// machine-readable error codes
const (
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeValidationError    = "validation_error"
	CodeBadRequest         = "bad_request"
	CodeInvalidImage       = "invalid_image"
	CodeImageTooLarge      = "image_too_large"
	CodeInvalidStyle       = "invalid_style"
	CodeUpgradeRequired    = "upgrade_required"
	CodeCreditsExhausted   = "credits_exhausted"
	CodeRateLimited        = "rate_limited"
	CodeQuotaExceeded      = "quota_exceeded"
	CodeContentRejected    = "content_rejected"
	CodeProviderTransient  = "provider_transient_failure"
	CodeProviderFailure    = "provider_failure"
	CodeAnalysisParseError = "analysis_parse_error"
	CodeTooManyRequests    = "too_many_requests"
	CodePayloadTooLarge    = "payload_too_large"
	CodeServerError        = "server_error"
)

// error categories for classification
const (
	CategoryDatabase   = "database"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryAuth       = "auth"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

type ErrorInfo struct {
	Category  string
	Sanitized string
}
