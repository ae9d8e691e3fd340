package credits

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnauthorized     = errors.New("identity required")
	ErrCreditsExhausted = errors.New("no credits remaining")
)

type Tier string

const (
	TierFree  Tier = "free"
	TierBasic Tier = "basic"
	TierPro   Tier = "pro"
)

// unlimited tiers are never decremented
func (t Tier) Unlimited() bool {
	return t == TierPro
}

// one row per identity; CreditsRemaining is ignored for pro
type UsageCredits struct {
	UserID                string     `json:"userId"`
	Tier                  Tier       `json:"tier"`
	CreditsRemaining      int        `json:"creditsRemaining"`
	CreditsMonthlyLimit   int        `json:"creditsMonthlyLimit"`
	TotalRedesigns        int        `json:"totalRedesigns"`
	SubscriptionStartedAt *time.Time `json:"subscriptionStartedAt,omitempty"`
	SubscriptionEndsAt    *time.Time `json:"subscriptionEndsAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// persistence for the per-identity credit row; every mutation is a single
// atomic statement so concurrent requests cannot over-spend
type Ledger interface {
	GetOrCreate(ctx context.Context, userID string) (*UsageCredits, error)
	// ok is false when the row is missing or has no credit left
	TryConsumeOne(ctx context.Context, userID string) (c Consumption, ok bool, err error)
	RefundOne(ctx context.Context, userID string) error
	IncrementTotalRedesigns(ctx context.Context, userID string) error
}

// what a successful TryConsumeOne saw, read from the same atomic update
type Consumption struct {
	Tier Tier
	// true when a credit was actually decremented
	Charged bool
}

// outcome of a successful reservation
type Reservation struct {
	UserID string
	Tier   Tier
	// false when nothing was decremented (unlimited tier)
	Charged bool
}
