package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// ListRecentlyViewed returns up to store.RecentlyViewedLimit of a user's most
// recently viewed rows, newest first, ties broken by highest ID.
func (s *Store) ListRecentlyViewed(ctx context.Context, userID int64) ([]model.RecentlyViewedItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, item_id, user_id, viewed_at FROM recently_viewed_items
		 WHERE user_id = ? ORDER BY viewed_at DESC, id DESC LIMIT ?`,
		userID, store.RecentlyViewedLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recently viewed items: %w", err)
	}
	defer rows.Close()

	recent := []model.RecentlyViewedItem{}
	for rows.Next() {
		var r model.RecentlyViewedItem
		if err := rows.Scan(&r.ID, &r.ItemID, &r.UserID, &r.ViewedAt); err != nil {
			return nil, fmt.Errorf("scanning recently viewed item: %w", err)
		}
		recent = append(recent, r)
	}
	return recent, rows.Err()
}

// ListRecentlyViewedWithItem is ListRecentlyViewed with items attached.
func (s *Store) ListRecentlyViewedWithItem(ctx context.Context, userID int64) ([]model.RecentlyViewedWithItem, error) {
	recent, err := s.ListRecentlyViewed(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := s.itemLookup(ctx)
	out := make([]model.RecentlyViewedWithItem, 0, len(recent))
	for _, r := range recent {
		item, err := items(r.ItemID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.RecentlyViewedWithItem{RecentlyViewedItem: r, Item: item})
	}
	return out, nil
}

// AddRecentlyViewed records a view, touching the existing row for the pair
// if there is one.
func (s *Store) AddRecentlyViewed(ctx context.Context, userID, itemID int64) (*model.RecentlyViewedItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Taken inside the transaction so concurrent views of a pair land in order.
	viewedAt := s.timestamp()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM recently_viewed_items WHERE user_id = ? AND item_id = ?`,
		userID, itemID,
	).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		result, err := tx.ExecContext(ctx,
			`INSERT INTO recently_viewed_items (item_id, user_id, viewed_at) VALUES (?, ?, ?)`,
			itemID, userID, viewedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("adding recently viewed item: %w", err)
		}
		if id, err = result.LastInsertId(); err != nil {
			return nil, fmt.Errorf("getting recently viewed id: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("finding recently viewed item: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE recently_viewed_items SET viewed_at = ? WHERE id = ?`, viewedAt, id,
		); err != nil {
			return nil, fmt.Errorf("touching recently viewed item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing recently viewed item: %w", err)
	}
	return &model.RecentlyViewedItem{ID: id, ItemID: itemID, UserID: userID, ViewedAt: viewedAt}, nil
}
