package redesign

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/internal/redesign"
	"github.com/gin-gonic/gin"
)

// Handler redesigns the submitted room photo in the requested style
func Handler(redesigner Redesigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			if failure := redesign.BindFailure(err); failure != nil {
				RespondFailure(c, failure)
				return
			}

			errors.ValidationError(c, err)
			return
		}

		// the orchestrator owns the unauthorized outcome so validation order holds
		userID, _ := auth.GetUserID(c)

		result, err := redesigner.Redesign(c.Request.Context(), redesign.Request{
			UserID:         userID,
			Image:          req.Image,
			Style:          req.Style,
			Customizations: req.Customizations,
		})
		if err != nil {
			var failure *redesign.Failure
			if stderrors.As(err, &failure) {
				RespondFailure(c, failure)
				return
			}

			errors.InternalError(c, "failed to redesign room", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			RedesignedImage: result.Image,
			Message:         result.Message,
		})
	}
}
