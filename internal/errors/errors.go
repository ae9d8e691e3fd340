package errors

import (
	"errors"
	"net/http"

	"codeberg.org/roomrevive/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc.
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// writes an arbitrary status/code pair; the building block for the helpers below
func Respond(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// writes a fully populated body; used when RawResponse must reach the client
func RespondBody(c *gin.Context, status int, body ErrorResponse) {
	c.AbortWithStatusJSON(status, body)
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	Respond(c, http.StatusUnauthorized, CodeUnauthorized, message, "")
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	Respond(c, http.StatusNotFound, CodeNotFound, message, "")
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	Respond(c, http.StatusBadRequest, CodeBadRequest, message, sanitizeError(err))
}

// returns a 400 bad request error for body binding failures, or 413 when
// the body ran past the configured limit
func ValidationError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		Respond(c, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large", "")
		return
	}

	Respond(c, http.StatusBadRequest, CodeValidationError, "request validation failed", sanitizeError(err))
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	Respond(c, http.StatusTooManyRequests, CodeTooManyRequests, message, "")
}

// returns a 402 payment required error; code says which limit was hit
func PaymentRequired(c *gin.Context, code, message, details string) {
	Respond(c, http.StatusPaymentRequired, code, message, details)
}

// returns a 502 bad gateway error for upstream provider failures
func BadGateway(c *gin.Context, message, details string) {
	if message == "" {
		message = "upstream service failed"
	}

	Respond(c, http.StatusBadGateway, CodeProviderFailure, message, details)
}

// returns a 503 service unavailable error
func ServiceUnavailable(c *gin.Context, message, details string) {
	if message == "" {
		message = "service temporarily unavailable"
	}

	Respond(c, http.StatusServiceUnavailable, CodeProviderTransient, message, details)
}

// returns a 500 internal server error and logs the cause with request context
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	Respond(c, http.StatusInternalServerError, CodeServerError, message, sanitizeError(err))
}

// recovers panics at the handler boundary and answers with a generic 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error("panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"user_id", c.GetString("user_id"),
		)

		Respond(c, http.StatusInternalServerError, CodeServerError, "An unexpected error occurred", "")
	})
}
