package credits

import (
	"context"
	"sync"
	"time"
)

// in-process ledger for development and tests
type MemoryLedger struct {
	mu          sync.Mutex
	rows        map[string]*UsageCredits
	freeCredits int
}

func NewMemoryLedger(freeCredits int) *MemoryLedger {
	return &MemoryLedger{
		rows:        make(map[string]*UsageCredits),
		freeCredits: freeCredits,
	}
}

// overwrites a row; stands in for the external billing process
func (l *MemoryLedger) Put(uc UsageCredits) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if uc.CreatedAt.IsZero() {
		uc.CreatedAt = now
	}
	uc.UpdatedAt = now

	l.rows[uc.UserID] = &uc
}

func (l *MemoryLedger) GetOrCreate(_ context.Context, userID string) (*UsageCredits, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	row := l.rowLocked(userID)
	out := *row
	return &out, nil
}

func (l *MemoryLedger) TryConsumeOne(_ context.Context, userID string) (Consumption, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	row, ok := l.rows[userID]
	if !ok {
		return Consumption{}, false, nil
	}

	if row.Tier.Unlimited() {
		return Consumption{Tier: row.Tier}, true, nil
	}

	if row.CreditsRemaining <= 0 {
		return Consumption{}, false, nil
	}

	row.CreditsRemaining--
	row.UpdatedAt = time.Now()
	return Consumption{Tier: row.Tier, Charged: true}, true, nil
}

func (l *MemoryLedger) RefundOne(_ context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if row, ok := l.rows[userID]; ok && !row.Tier.Unlimited() {
		row.CreditsRemaining++
		row.UpdatedAt = time.Now()
	}

	return nil
}

func (l *MemoryLedger) IncrementTotalRedesigns(_ context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if row, ok := l.rows[userID]; ok {
		row.TotalRedesigns++
		row.UpdatedAt = time.Now()
	}

	return nil
}

func (l *MemoryLedger) rowLocked(userID string) *UsageCredits {
	if row, ok := l.rows[userID]; ok {
		return row
	}

	now := time.Now()
	row := &UsageCredits{
		UserID:              userID,
		Tier:                TierFree,
		CreditsRemaining:    l.freeCredits,
		CreditsMonthlyLimit: l.freeCredits,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	l.rows[userID] = row
	return row
}
