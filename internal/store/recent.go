package store

import (
	"cmp"
	"context"
	"slices"

	"github.com/erazemk/izposoja/internal/model"
)

// ListRecentlyViewed returns up to RecentlyViewedLimit of a user's most
// recently viewed rows, newest first. Equal timestamps order by ID, highest
// first.
func (m *Memory) ListRecentlyViewed(_ context.Context, userID int64) ([]model.RecentlyViewedItem, error) {
	rows := m.recent.scan(func(r model.RecentlyViewedItem) bool { return r.UserID == userID })
	slices.SortFunc(rows, func(a, b model.RecentlyViewedItem) int {
		if c := b.ViewedAt.Compare(a.ViewedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if len(rows) > RecentlyViewedLimit {
		rows = rows[:RecentlyViewedLimit]
	}
	return rows, nil
}

// ListRecentlyViewedWithItem is ListRecentlyViewed with items attached.
func (m *Memory) ListRecentlyViewedWithItem(ctx context.Context, userID int64) ([]model.RecentlyViewedWithItem, error) {
	rows, _ := m.ListRecentlyViewed(ctx, userID)
	out := make([]model.RecentlyViewedWithItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.RecentlyViewedWithItem{RecentlyViewedItem: r, Item: m.items.get(r.ItemID)})
	}
	return out, nil
}

// AddRecentlyViewed records a view. A repeat view of the same pair moves the
// existing row's timestamp forward and keeps its ID.
func (m *Memory) AddRecentlyViewed(_ context.Context, userID, itemID int64) (*model.RecentlyViewedItem, error) {
	r := m.recent.upsert(
		func(r model.RecentlyViewedItem) bool { return r.UserID == userID && r.ItemID == itemID },
		func(r *model.RecentlyViewedItem) { r.ViewedAt = m.now() },
		func(id int64) model.RecentlyViewedItem {
			return model.RecentlyViewedItem{ID: id, ItemID: itemID, UserID: userID, ViewedAt: m.now()}
		},
	)
	return &r, nil
}
