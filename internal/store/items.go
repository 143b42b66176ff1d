package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// GetItem returns an item by ID.
func (m *Memory) GetItem(_ context.Context, id int64) (*model.Item, error) {
	return m.items.get(id), nil
}

// ListItems returns all items.
func (m *Memory) ListItems(_ context.Context) ([]model.Item, error) {
	return m.items.scan(nil), nil
}

// ListItemsByCategory returns the items in the given category.
func (m *Memory) ListItemsByCategory(_ context.Context, category string) ([]model.Item, error) {
	return m.items.scan(func(i model.Item) bool { return i.Category == category }), nil
}

// CreateItem creates a new item.
func (m *Memory) CreateItem(_ context.Context, n model.NewItem) (*model.Item, error) {
	item := m.items.insert(func(id int64) model.Item { return n.Item(id, m.now()) })
	return &item, nil
}

// UpdateItem merges patch over the item. Returns nil if the item is unknown.
func (m *Memory) UpdateItem(_ context.Context, id int64, patch model.ItemPatch) (*model.Item, error) {
	return m.items.update(id, patch.Apply), nil
}
