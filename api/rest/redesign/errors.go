package redesign

import (
	"net/http"

	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/internal/redesign"
	"github.com/gin-gonic/gin"
)

// maps a failure kind to its HTTP status and machine code
func StatusFor(kind redesign.Kind) (int, string) {
	switch kind {
	case redesign.KindInvalidImage:
		return http.StatusBadRequest, errors.CodeInvalidImage
	case redesign.KindImageTooLarge:
		return http.StatusBadRequest, errors.CodeImageTooLarge
	case redesign.KindInvalidStyle:
		return http.StatusBadRequest, errors.CodeInvalidStyle
	case redesign.KindContentRejected:
		return http.StatusBadRequest, errors.CodeContentRejected
	case redesign.KindUnauthorized:
		return http.StatusUnauthorized, errors.CodeUnauthorized
	case redesign.KindPremiumStyle:
		return http.StatusPaymentRequired, errors.CodeUpgradeRequired
	case redesign.KindCreditsExhausted:
		return http.StatusPaymentRequired, errors.CodeCreditsExhausted
	case redesign.KindQuotaExceeded:
		return http.StatusPaymentRequired, errors.CodeQuotaExceeded
	case redesign.KindRateLimited:
		return http.StatusTooManyRequests, errors.CodeRateLimited
	case redesign.KindProviderFailure:
		return http.StatusBadGateway, errors.CodeProviderFailure
	case redesign.KindProviderTransientFailure:
		return http.StatusServiceUnavailable, errors.CodeProviderTransient
	default:
		return http.StatusInternalServerError, errors.CodeServerError
	}
}

// writes the error body for an expected failure
func RespondFailure(c *gin.Context, f *redesign.Failure) {
	status, code := StatusFor(f.Kind)

	switch status {
	case http.StatusPaymentRequired:
		errors.PaymentRequired(c, code, f.Message, f.Details)
	case http.StatusBadGateway:
		errors.BadGateway(c, f.Message, f.Details)
	case http.StatusServiceUnavailable:
		errors.ServiceUnavailable(c, f.Message, f.Details)
	default:
		errors.Respond(c, status, code, f.Message, f.Details)
	}
}
