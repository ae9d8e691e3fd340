package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// history backed by the redesign_history table
type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, userID string, in SaveInput) (*Item, error) {
	customizations := in.Customizations
	if customizations == nil {
		customizations = map[string]any{}
	}

	row := s.db.QueryRow(
		ctx,
		queryInsert,
		userID,
		in.OriginalImageURL,
		in.RedesignedImageURL,
		in.Style,
		customizations,
		in.IsFavorite,
	)

	item, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save redesign: %w", err)
	}

	return item, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string, limit int) ([]Item, error) {
	return s.query(ctx, queryList, userID, clampLimit(limit))
}

func (s *PostgresStore) ListFavorites(ctx context.Context, userID string) ([]Item, error) {
	return s.query(ctx, queryListFavorites, userID)
}

func (s *PostgresStore) UpdateFavorite(ctx context.Context, userID, id string, isFavorite bool) (*Item, error) {
	item, err := scanItem(s.db.QueryRow(ctx, queryUpdateFavorite, isFavorite, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update favorite: %w", err)
	}

	return item, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.Exec(ctx, queryDelete, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) query(ctx context.Context, sql string, args ...any) ([]Item, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	items := []Item{}

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanItem(row pgx.Row) (*Item, error) {
	var item Item

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.OriginalImageURL,
		&item.RedesignedImageURL,
		&item.Style,
		&item.Customizations,
		&item.IsFavorite,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &item, nil
}
