package credits

import (
	"context"
	"fmt"

	"codeberg.org/roomrevive/server/internal/logger"
)

// reserves and refunds usage credits on top of a Ledger
type Gate struct {
	ledger Ledger
}

func NewGate(ledger Ledger) *Gate {
	return &Gate{ledger: ledger}
}

// consumes one credit, or confirms an unlimited tier; denial mutates nothing
func (g *Gate) Reserve(ctx context.Context, userID string) (Reservation, error) {
	if userID == "" {
		return Reservation{}, ErrUnauthorized
	}

	if _, err := g.ledger.GetOrCreate(ctx, userID); err != nil {
		return Reservation{}, err
	}

	// the tier may change between the two calls; trust only the consume
	consumed, ok, err := g.ledger.TryConsumeOne(ctx, userID)
	if err != nil {
		return Reservation{}, err
	}

	if !ok {
		return Reservation{}, ErrCreditsExhausted
	}

	return Reservation{
		UserID:  userID,
		Tier:    consumed.Tier,
		Charged: consumed.Charged,
	}, nil
}

// restores a charged reservation; failures are logged and returned but
// never change the caller's outcome
func (g *Gate) Refund(ctx context.Context, r Reservation) error {
	if !r.Charged {
		return nil
	}

	if err := g.ledger.RefundOne(ctx, r.UserID); err != nil {
		logger.FromContext(ctx).Error("credit refund failed", "user_id", r.UserID, "error", err)
		return fmt.Errorf("refund: %w", err)
	}

	return nil
}

func (g *Gate) RecordSuccess(ctx context.Context, userID string) error {
	if err := g.ledger.IncrementTotalRedesigns(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn("failed to record redesign", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// read-only view; creates the default row on first sight like Reserve does
func (g *Gate) Balance(ctx context.Context, userID string) (*UsageCredits, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	return g.ledger.GetOrCreate(ctx, userID)
}
