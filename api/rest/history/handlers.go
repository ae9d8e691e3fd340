package history

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/roomrevive/server/api/rest/pagination"
	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/roomrevive/history"
	"github.com/gin-gonic/gin"
)

// ListHistoryHandler lists the authenticated user's redesigns, newest first
func ListHistoryHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		params := pagination.FromQuery(c, history.DefaultListLimit, history.MaxListLimit)

		items, err := store.List(c.Request.Context(), userID, params.Limit)
		if err != nil {
			errors.InternalError(c, "failed to load redesign history", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			History:    items,
			Pagination: pagination.NewMeta(params, len(items)),
		})
	}
}

// SaveRedesignHandler stores a finished redesign
func SaveRedesignHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req SaveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		item, err := store.Save(c.Request.Context(), userID, history.SaveInput{
			OriginalImageURL:   req.OriginalImageURL,
			RedesignedImageURL: req.RedesignedImageURL,
			Style:              req.Style,
			Customizations:     req.Customizations,
			IsFavorite:         req.IsFavorite,
		})
		if err != nil {
			errors.InternalError(c, "failed to save redesign", err)
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// ListFavoritesHandler lists only the redesigns marked as favorite
func ListFavoritesHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		items, err := store.ListFavorites(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to load favorites", err)
			return
		}

		c.JSON(http.StatusOK, FavoritesResponse{Favorites: items})
	}
}

// UpdateFavoriteHandler sets or clears the favorite flag
func UpdateFavoriteHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req FavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		item, err := store.UpdateFavorite(c.Request.Context(), userID, c.Param("id"), *req.IsFavorite)
		if err != nil {
			if stderrors.Is(err, history.ErrNotFound) {
				errors.NotFound(c, "redesign")
				return
			}

			errors.InternalError(c, "failed to update favorite", err)
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DeleteRedesignHandler removes a redesign owned by the caller
func DeleteRedesignHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		if err := store.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
			if stderrors.Is(err, history.ErrNotFound) {
				errors.NotFound(c, "redesign")
				return
			}

			errors.InternalError(c, "failed to delete redesign", err)
			return
		}

		c.JSON(http.StatusOK, DeleteResponse{Message: "Redesign deleted"})
	}
}
