package credits

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/internal/prompt"
	"codeberg.org/roomrevive/server/roomrevive/credits"
	"github.com/gin-gonic/gin"
)

// GetCreditsHandler returns the authenticated user's credit balance, creating the row on first use
func GetCreditsHandler(balances BalanceReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "Please sign in to view your credits")
			return
		}

		balance, err := balances.Balance(c.Request.Context(), userID)
		if err != nil {
			if stderrors.Is(err, credits.ErrUnauthorized) {
				errors.Unauthorized(c, "Please sign in to view your credits")
				return
			}

			errors.InternalError(c, "failed to load credits", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Tier:                  balance.Tier,
			CreditsRemaining:      balance.CreditsRemaining,
			CreditsMonthlyLimit:   balance.CreditsMonthlyLimit,
			TotalRedesigns:        balance.TotalRedesigns,
			Unlimited:             balance.Tier.Unlimited(),
			SubscriptionStartedAt: balance.SubscriptionStartedAt,
			SubscriptionEndsAt:    balance.SubscriptionEndsAt,
			AllowsPremiumStyles:   balance.Tier.AllowsPremiumStyles(),
			PremiumStyles:         prompt.PremiumStyleIDs(),
			Features:              balance.Tier.Features(),
		})
	}
}
