package analysis

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/roomrevive/server/api/rest/redesign"
	"codeberg.org/roomrevive/server/internal/analysis"
	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/internal/errors"
	redesignsvc "codeberg.org/roomrevive/server/internal/redesign"
	"github.com/gin-gonic/gin"
)

const successMessage = "Room analyzed successfully!"

// Handler describes the submitted room photo as structured JSON
func Handler(analyzer Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			if failure := redesignsvc.BindFailure(err); failure != nil {
				redesign.RespondFailure(c, failure)
				return
			}

			errors.ValidationError(c, err)
			return
		}

		userID, _ := auth.GetUserID(c)

		result, err := analyzer.Analyze(c.Request.Context(), analysis.Request{
			UserID: userID,
			Image:  req.Image,
		})
		if err != nil {
			var failure *analysis.Failure
			if !stderrors.As(err, &failure) || failure.Failure == nil {
				errors.InternalError(c, "failed to analyze room", err)
				return
			}

			if failure.Kind == analysis.KindAnalysisParseError {
				errors.RespondBody(c, http.StatusInternalServerError, errors.ErrorResponse{
					Error:       failure.Message,
					Code:        errors.CodeAnalysisParseError,
					RawResponse: failure.RawResponse,
				})
				return
			}

			redesign.RespondFailure(c, failure.Failure)
			return
		}

		c.JSON(http.StatusOK, Response{
			Analysis: result,
			Message:  successMessage,
		})
	}
}
