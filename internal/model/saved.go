package model

import "time"

// SavedItem is an item bookmarked by a user.
type SavedItem struct {
	ID      int64     `json:"id"`
	ItemID  int64     `json:"itemId"`
	UserID  int64     `json:"userId"`
	SavedAt time.Time `json:"savedAt"`
}

// RecentlyViewedItem records the last time a user viewed an item.
// There is at most one per (user, item) pair.
type RecentlyViewedItem struct {
	ID       int64     `json:"id"`
	ItemID   int64     `json:"itemId"`
	UserID   int64     `json:"userId"`
	ViewedAt time.Time `json:"viewedAt"`
}

// ItemRef is the request body shared by saving and viewing an item.
type ItemRef struct {
	ItemID int64 `json:"itemId" yaml:"itemId" validate:"required,gt=0"`
	UserID int64 `json:"userId" yaml:"userId" validate:"required,gt=0"`
}

// SavedItemWithItem is a saved item joined with its item, nil if missing.
type SavedItemWithItem struct {
	SavedItem
	Item *Item `json:"item"`
}

// RecentlyViewedWithItem is a recently viewed row joined with its item, nil
// if missing.
type RecentlyViewedWithItem struct {
	RecentlyViewedItem
	Item *Item `json:"item"`
}
