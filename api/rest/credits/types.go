package credits

import (
	"context"
	"time"

	"codeberg.org/roomrevive/server/roomrevive/credits"
)

// Response describes the caller's plan and remaining balance
type Response struct {
	Tier                  credits.Tier `json:"tier"`
	CreditsRemaining      int          `json:"creditsRemaining"`
	CreditsMonthlyLimit   int          `json:"creditsMonthlyLimit"`
	TotalRedesigns        int          `json:"totalRedesigns"`
	Unlimited             bool         `json:"unlimited"`
	SubscriptionStartedAt *time.Time   `json:"subscriptionStartedAt,omitempty"`
	SubscriptionEndsAt    *time.Time   `json:"subscriptionEndsAt,omitempty"`
	AllowsPremiumStyles   bool         `json:"allowsPremiumStyles"`
	PremiumStyles         []string     `json:"premiumStyles"`
	Features              []string     `json:"features"`
}

// satisfied by *credits.Gate
type BalanceReader interface {
	Balance(ctx context.Context, userID string) (*credits.UsageCredits, error)
}
