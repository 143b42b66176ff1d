package sqlite

import (
	"context"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

// ListSavedItems returns a user's saved items.
func (s *Store) ListSavedItems(ctx context.Context, userID int64) ([]model.SavedItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, item_id, user_id, saved_at FROM saved_items WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing saved items: %w", err)
	}
	defer rows.Close()

	saved := []model.SavedItem{}
	for rows.Next() {
		var si model.SavedItem
		if err := rows.Scan(&si.ID, &si.ItemID, &si.UserID, &si.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning saved item: %w", err)
		}
		saved = append(saved, si)
	}
	return saved, rows.Err()
}

// ListSavedItemsWithItem returns a user's saved items with their items
// attached, nil where the item does not exist.
func (s *Store) ListSavedItemsWithItem(ctx context.Context, userID int64) ([]model.SavedItemWithItem, error) {
	saved, err := s.ListSavedItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := s.itemLookup(ctx)
	out := make([]model.SavedItemWithItem, 0, len(saved))
	for _, si := range saved {
		item, err := items(si.ItemID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.SavedItemWithItem{SavedItem: si, Item: item})
	}
	return out, nil
}

// SaveItem records that a user saved an item. Duplicates are not rejected.
func (s *Store) SaveItem(ctx context.Context, userID, itemID int64) (*model.SavedItem, error) {
	savedAt := s.timestamp()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO saved_items (item_id, user_id, saved_at) VALUES (?, ?, ?)`,
		itemID, userID, savedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting saved item id: %w", err)
	}

	return &model.SavedItem{ID: id, ItemID: itemID, UserID: userID, SavedAt: savedAt}, nil
}

// RemoveSavedItem deletes the oldest saved row for the pair, if any.
func (s *Store) RemoveSavedItem(ctx context.Context, userID, itemID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_items WHERE id = (
		     SELECT id FROM saved_items WHERE user_id = ? AND item_id = ? ORDER BY id LIMIT 1
		 )`,
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("removing saved item: %w", err)
	}
	return nil
}
