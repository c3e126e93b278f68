package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

// PremiumChecker is the one evaluation path for "may this account see
// premium content". The entitlement service implements it.
type PremiumChecker interface {
	HasPremiumAccess(ctx context.Context, accountID string) (bool, error)
}

// RequirePremium gates a route on the premium predicate. Runs after
// JWTAuthMiddleware; a missing identity is a 401, a valid identity without
// entitlement is a 402, so clients can tell "sign in" apart from "upgrade".
func RequirePremium(checker PremiumChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetString("user_id")
		if accountID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Please sign in to continue")
			c.Abort()
			return
		}

		ok, err := checker.HasPremiumAccess(c.Request.Context(), accountID)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !ok {
			utils.RespondError(c, http.StatusPaymentRequired, "This feature requires CultureCompass Pro")
			c.Abort()
			return
		}

		c.Next()
	}
}
