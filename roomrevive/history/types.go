package history

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("history item not found")

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// one saved redesign
type Item struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	OriginalImageURL   string         `json:"original_image_url"`
	RedesignedImageURL string         `json:"redesigned_image_url"`
	Style              string         `json:"style"`
	Customizations     map[string]any `json:"customizations"`
	IsFavorite         bool           `json:"is_favorite"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type SaveInput struct {
	OriginalImageURL   string
	RedesignedImageURL string
	Style              string
	Customizations     map[string]any
	IsFavorite         bool
}

// every operation is scoped to the owning identity
type Store interface {
	Save(ctx context.Context, userID string, in SaveInput) (*Item, error)
	List(ctx context.Context, userID string, limit int) ([]Item, error)
	ListFavorites(ctx context.Context, userID string) ([]Item, error)
	UpdateFavorite(ctx context.Context, userID, id string, isFavorite bool) (*Item, error)
	Delete(ctx context.Context, userID, id string) error
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}

	if limit > MaxListLimit {
		return MaxListLimit
	}

	return limit
}
