package history

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// per-process history, lost on restart
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Item
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]*Item),
		now:   time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, userID string, in SaveInput) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// stored items never alias caller maps
	customizations := maps.Clone(in.Customizations)
	if customizations == nil {
		customizations = map[string]any{}
	}

	now := s.now()
	item := &Item{
		ID:                 uuid.NewString(),
		UserID:             userID,
		OriginalImageURL:   in.OriginalImageURL,
		RedesignedImageURL: in.RedesignedImageURL,
		Style:              in.Style,
		Customizations:     customizations,
		IsFavorite:         in.IsFavorite,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	s.items[item.ID] = item
	out := item.clone()
	return &out, nil
}

func (s *MemoryStore) List(_ context.Context, userID string, limit int) ([]Item, error) {
	return s.filter(userID, false, clampLimit(limit)), nil
}

func (s *MemoryStore) ListFavorites(_ context.Context, userID string) ([]Item, error) {
	return s.filter(userID, true, 0), nil
}

func (s *MemoryStore) UpdateFavorite(_ context.Context, userID, id string, isFavorite bool) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return nil, ErrNotFound
	}

	item.IsFavorite = isFavorite
	item.UpdatedAt = s.now()

	out := item.clone()
	return &out, nil
}

func (s *MemoryStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return ErrNotFound
	}

	delete(s.items, id)
	return nil
}

// newest first; limit 0 means no limit
func (s *MemoryStore) filter(userID string, favoritesOnly bool, limit int) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Item{}
	for _, item := range s.items {
		if item.UserID != userID || (favoritesOnly && !item.IsFavorite) {
			continue
		}
		out = append(out, item.clone())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

func (i *Item) clone() Item {
	out := *i
	out.Customizations = maps.Clone(i.Customizations)
	return out
}
