package credits

const (
	queryGetOrCreate = `
		INSERT INTO user_credits (user_id, tier, credits_remaining, credits_monthly_limit)
		VALUES ($1, 'free', $2, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, tier, credits_remaining, credits_monthly_limit, total_redesigns,
			subscription_started_at, subscription_ends_at, created_at, updated_at
	`

	// pro rows match without a decrement; others only while a credit remains
	queryTryConsumeOne = `
		UPDATE user_credits
		SET credits_remaining = CASE WHEN tier = 'pro' THEN credits_remaining ELSE credits_remaining - 1 END,
			updated_at = NOW()
		WHERE user_id = $1
			AND (tier = 'pro' OR credits_remaining > 0)
		RETURNING tier
	`

	queryRefundOne = `
		UPDATE user_credits
		SET credits_remaining = credits_remaining + 1, updated_at = NOW()
		WHERE user_id = $1 AND tier <> 'pro'
	`

	queryIncrementTotalRedesigns = `
		UPDATE user_credits
		SET total_redesigns = total_redesigns + 1, updated_at = NOW()
		WHERE user_id = $1
	`
)
