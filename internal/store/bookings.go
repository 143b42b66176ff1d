package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// GetBooking returns a booking by ID.
func (m *Memory) GetBooking(_ context.Context, id int64) (*model.Booking, error) {
	return m.bookings.get(id), nil
}

// ListBookings returns all bookings.
func (m *Memory) ListBookings(_ context.Context) ([]model.Booking, error) {
	return m.bookings.scan(nil), nil
}

// ListBookingsByUser returns the bookings made by a user.
func (m *Memory) ListBookingsByUser(_ context.Context, userID int64) ([]model.Booking, error) {
	return m.bookings.scan(func(b model.Booking) bool { return b.UserID == userID }), nil
}

// ListBookingsByItem returns the bookings of an item.
func (m *Memory) ListBookingsByItem(_ context.Context, itemID int64) ([]model.Booking, error) {
	return m.bookings.scan(func(b model.Booking) bool { return b.ItemID == itemID }), nil
}

// ListBookingsWithItemByUser returns a user's bookings, each with its item
// attached. The item is nil when it does not exist.
func (m *Memory) ListBookingsWithItemByUser(ctx context.Context, userID int64) ([]model.BookingWithItem, error) {
	bookings, _ := m.ListBookingsByUser(ctx, userID)
	out := make([]model.BookingWithItem, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, model.BookingWithItem{Booking: b, Item: m.items.get(b.ItemID)})
	}
	return out, nil
}

// CreateBooking creates a new booking. Item and user existence is the
// caller's concern.
func (m *Memory) CreateBooking(_ context.Context, n model.NewBooking) (*model.Booking, error) {
	b := m.bookings.insert(func(id int64) model.Booking { return n.Booking(id, m.now()) })
	return &b, nil
}

// UpdateBooking merges patch over the booking. Returns nil if unknown.
func (m *Memory) UpdateBooking(_ context.Context, id int64, patch model.BookingPatch) (*model.Booking, error) {
	return m.bookings.update(id, patch.Apply), nil
}

// UpdateBookingStatus sets a booking's status to any given value.
func (m *Memory) UpdateBookingStatus(ctx context.Context, id int64, status string) (*model.Booking, error) {
	return m.UpdateBooking(ctx, id, model.BookingPatch{Status: &status})
}
