package redesign

import (
	"context"
	"fmt"

	"codeberg.org/roomrevive/server/internal/prompt"
	"codeberg.org/roomrevive/server/roomrevive/credits"
)

// failure categories surfaced to clients
type Kind string

const (
	KindInvalidImage             Kind = "InvalidImage"
	KindImageTooLarge            Kind = "ImageTooLarge"
	KindInvalidStyle             Kind = "InvalidStyle"
	KindPremiumStyle             Kind = "PremiumStyle"
	KindUnauthorized             Kind = "Unauthorized"
	KindCreditsExhausted         Kind = "CreditsExhausted"
	KindRateLimited              Kind = "RateLimited"
	KindQuotaExceeded            Kind = "QuotaExceeded"
	KindContentRejected          Kind = "ContentRejected"
	KindProviderTransientFailure Kind = "ProviderTransientFailure"
	KindProviderFailure          Kind = "ProviderFailure"
)

// typed failure with a user-facing message
type Failure struct {
	Kind    Kind
	Message string
	Details string
}

func (f *Failure) Error() string {
	if f.Details == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", f.Kind, f.Message, f.Details)
}

// true for failures raised after a credit was reserved
func (f *Failure) AfterReservation() bool {
	switch f.Kind {
	case KindRateLimited, KindQuotaExceeded, KindContentRejected, KindProviderTransientFailure, KindProviderFailure:
		return true
	default:
		return false
	}
}

type Request struct {
	UserID         string
	Image          string
	Style          string
	Customizations *prompt.Customizations
}

type Result struct {
	Image   string
	Message string
}

// the credit operations a redesign needs; satisfied by *credits.Gate
type CreditGate interface {
	Balance(ctx context.Context, userID string) (*credits.UsageCredits, error)
	Reserve(ctx context.Context, userID string) (credits.Reservation, error)
	Refund(ctx context.Context, r credits.Reservation) error
	RecordSuccess(ctx context.Context, userID string) error
}
