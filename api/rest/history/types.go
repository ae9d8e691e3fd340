package history

import (
	"codeberg.org/roomrevive/server/api/rest/pagination"
	"codeberg.org/roomrevive/server/roomrevive/history"
)

// SaveRequest represents a redesign the client wants to keep
type SaveRequest struct {
	OriginalImageURL   string         `json:"original_image_url" binding:"required"`
	RedesignedImageURL string         `json:"redesigned_image_url" binding:"required"`
	Style              string         `json:"style" binding:"required"`
	Customizations     map[string]any `json:"customizations"`
	IsFavorite         bool           `json:"is_favorite"`
}

// FavoriteRequest toggles the favorite flag; a pointer so false is distinguishable from absent
type FavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}

type ListResponse struct {
	History    []history.Item  `json:"history"`
	Pagination pagination.Meta `json:"pagination"`
}

type FavoritesResponse struct {
	Favorites []history.Item `json:"favorites"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
