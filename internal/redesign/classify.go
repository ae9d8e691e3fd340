package redesign

import (
	"errors"
	"net/http"
	"strings"

	"codeberg.org/roomrevive/server/internal/gateway"
)

const (
	msgRateLimited       = "Rate limit exceeded. Please try again in a moment."
	msgQuotaExceeded     = "AI usage limit reached. Please try again later."
	msgProviderFailure   = "The AI service failed to process the request. Please try again."
	msgTransient         = "Image generation temporarily unavailable. Please try again."
	msgTransientDetails  = "The AI processed your image but couldn't generate the result. This is usually temporary."
	msgContentRejected   = "Please upload an interior room photo. The AI needs to see the inside of a room to redesign it."
	defaultSuccessReason = "Room redesigned successfully!"
)

// phrases the model uses when it believes it produced an image
var transformationClaims = []string{"here's", "transformed"}

// maps one gateway outcome onto a failure, or nil when an image came back.
// This is the only place provider text is inspected.
func Classify(resp *gateway.Response, err error) *Failure {
	if err != nil {
		return classifyError(err)
	}

	if resp != nil && resp.Image != "" {
		return nil
	}

	text := ""
	if resp != nil {
		text = resp.Text
	}

	lower := strings.ToLower(text)
	for _, claim := range transformationClaims {
		if strings.Contains(lower, claim) {
			return &Failure{Kind: KindProviderTransientFailure, Message: msgTransient, Details: msgTransientDetails}
		}
	}

	return &Failure{Kind: KindContentRejected, Message: msgContentRejected, Details: text}
}

// status mapping shared with room analysis
func classifyError(err error) *Failure {
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests:
			return &Failure{Kind: KindRateLimited, Message: msgRateLimited}
		case http.StatusPaymentRequired:
			return &Failure{Kind: KindQuotaExceeded, Message: msgQuotaExceeded}
		}

		return &Failure{Kind: KindProviderFailure, Message: msgProviderFailure, Details: http.StatusText(statusErr.StatusCode)}
	}

	// network errors and deadline expiry
	return &Failure{Kind: KindProviderFailure, Message: msgProviderFailure}
}

// exported for the analysis orchestrator, which has no image branch
func ClassifyError(err error) *Failure {
	if err == nil {
		return nil
	}

	return classifyError(err)
}
