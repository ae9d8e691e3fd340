package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// the subset of pgxpool.Pool the ledger needs
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ledger backed by the user_credits table
type PostgresLedger struct {
	db          DB
	freeCredits int
}

func NewPostgresLedger(db DB, freeCredits int) *PostgresLedger {
	return &PostgresLedger{db: db, freeCredits: freeCredits}
}

// loads the identity's row, inserting the free-tier default the first time
func (l *PostgresLedger) GetOrCreate(ctx context.Context, userID string) (*UsageCredits, error) {
	var uc UsageCredits

	err := l.db.QueryRow(ctx, queryGetOrCreate, userID, l.freeCredits).Scan(
		&uc.UserID,
		&uc.Tier,
		&uc.CreditsRemaining,
		&uc.CreditsMonthlyLimit,
		&uc.TotalRedesigns,
		&uc.SubscriptionStartedAt,
		&uc.SubscriptionEndsAt,
		&uc.CreatedAt,
		&uc.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to load credits: %w", err)
	}

	return &uc, nil
}

// the returned tier is the one the CASE saw, so Charged cannot drift from
// what the statement did even if the tier changes concurrently
func (l *PostgresLedger) TryConsumeOne(ctx context.Context, userID string) (Consumption, bool, error) {
	var tier Tier

	err := l.db.QueryRow(ctx, queryTryConsumeOne, userID).Scan(&tier)
	if errors.Is(err, pgx.ErrNoRows) {
		return Consumption{}, false, nil
	}

	if err != nil {
		return Consumption{}, false, fmt.Errorf("failed to consume credit: %w", err)
	}

	return Consumption{Tier: tier, Charged: !tier.Unlimited()}, true, nil
}

func (l *PostgresLedger) RefundOne(ctx context.Context, userID string) error {
	if _, err := l.db.Exec(ctx, queryRefundOne, userID); err != nil {
		return fmt.Errorf("failed to refund credit: %w", err)
	}

	return nil
}

func (l *PostgresLedger) IncrementTotalRedesigns(ctx context.Context, userID string) error {
	if _, err := l.db.Exec(ctx, queryIncrementTotalRedesigns, userID); err != nil {
		return fmt.Errorf("failed to increment total redesigns: %w", err)
	}

	return nil
}
