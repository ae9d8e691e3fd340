package history

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/roomrevive/server/internal/logger"
	"codeberg.org/roomrevive/server/internal/media"
)

// wraps a Store and moves inline images to object storage before saving
type Service struct {
	Store
	uploader media.Uploader
}

func NewService(store Store, uploader media.Uploader) *Service {
	if uploader == nil {
		uploader = media.Disabled()
	}

	return &Service{Store: store, uploader: uploader}
}

func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (*Item, error) {
	original, err := s.offload(ctx, "original", in.OriginalImageURL)
	if err != nil {
		return nil, err
	}

	redesigned, err := s.offload(ctx, "redesigned", in.RedesignedImageURL)
	if err != nil {
		return nil, err
	}

	in.OriginalImageURL = original
	in.RedesignedImageURL = redesigned

	return s.Store.Save(ctx, userID, in)
}

// without an object store the data URL is stored as-is
func (s *Service) offload(ctx context.Context, name, value string) (string, error) {
	url, err := media.OffloadDataURL(ctx, s.uploader, name, value)
	if errors.Is(err, media.ErrUploaderDisabled) {
		return value, nil
	}

	if err != nil {
		logger.FromContext(ctx).Warn("image offload failed", "image", name, "error", err)
		return "", fmt.Errorf("offload %s image: %w", name, err)
	}

	return url, nil
}
