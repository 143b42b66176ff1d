package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// ListSavedItems returns a user's saved items.
func (m *Memory) ListSavedItems(_ context.Context, userID int64) ([]model.SavedItem, error) {
	return m.saved.scan(func(s model.SavedItem) bool { return s.UserID == userID }), nil
}

// ListSavedItemsWithItem returns a user's saved items with their items
// attached, nil where the item does not exist.
func (m *Memory) ListSavedItemsWithItem(ctx context.Context, userID int64) ([]model.SavedItemWithItem, error) {
	saved, _ := m.ListSavedItems(ctx, userID)
	out := make([]model.SavedItemWithItem, 0, len(saved))
	for _, s := range saved {
		out = append(out, model.SavedItemWithItem{SavedItem: s, Item: m.items.get(s.ItemID)})
	}
	return out, nil
}

// SaveItem records that a user saved an item. Saving the same pair twice
// stores two rows.
func (m *Memory) SaveItem(_ context.Context, userID, itemID int64) (*model.SavedItem, error) {
	s := m.saved.insert(func(id int64) model.SavedItem {
		return model.SavedItem{ID: id, ItemID: itemID, UserID: userID, SavedAt: m.now()}
	})
	return &s, nil
}

// RemoveSavedItem deletes the oldest saved row for the pair, if any.
func (m *Memory) RemoveSavedItem(_ context.Context, userID, itemID int64) error {
	m.saved.deleteFirst(func(s model.SavedItem) bool {
		return s.UserID == userID && s.ItemID == itemID
	})
	return nil
}
