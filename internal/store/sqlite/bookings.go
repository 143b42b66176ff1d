package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

const bookingColumns = `id, item_id, user_id, start_date, end_date, status, total_price, location, created_at`

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func scanBooking(row scanner) (*model.Booking, error) {
	var b model.Booking
	var location sql.NullString
	if err := row.Scan(&b.ID, &b.ItemID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status,
		&b.TotalPrice, &location, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.Location = stringPtr(location)
	return &b, nil
}

func getBooking(ctx context.Context, q queryRower, id int64) (*model.Booking, error) {
	b, err := scanBooking(q.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting booking: %w", err)
	}
	return b, nil
}

// GetBooking returns a booking by ID.
func (s *Store) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	return getBooking(ctx, s.db, id)
}

func (s *Store) listBookings(ctx context.Context, where string, args ...any) ([]model.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+bookingColumns+` FROM bookings `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// ListBookings returns all bookings.
func (s *Store) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return s.listBookings(ctx, "")
}

// ListBookingsByUser returns the bookings made by a user.
func (s *Store) ListBookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	return s.listBookings(ctx, "WHERE user_id = ?", userID)
}

// ListBookingsByItem returns the bookings of an item.
func (s *Store) ListBookingsByItem(ctx context.Context, itemID int64) ([]model.Booking, error) {
	return s.listBookings(ctx, "WHERE item_id = ?", itemID)
}

// ListBookingsWithItemByUser returns a user's bookings with their items
// attached, nil where the item does not exist.
func (s *Store) ListBookingsWithItemByUser(ctx context.Context, userID int64) ([]model.BookingWithItem, error) {
	bookings, err := s.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := s.itemLookup(ctx)
	out := make([]model.BookingWithItem, 0, len(bookings))
	for _, b := range bookings {
		item, err := items(b.ItemID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.BookingWithItem{Booking: b, Item: item})
	}
	return out, nil
}

// CreateBooking creates a new booking.
func (s *Store) CreateBooking(ctx context.Context, n model.NewBooking) (*model.Booking, error) {
	b := n.Booking(0, s.timestamp())
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (item_id, user_id, start_date, end_date, status, total_price, location, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ItemID, b.UserID, b.StartDate.UTC(), b.EndDate.UTC(), b.Status, b.TotalPrice,
		nullString(b.Location), b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting booking id: %w", err)
	}

	return s.GetBooking(ctx, id)
}

// UpdateBooking merges patch over the booking. Returns nil if unknown.
func (s *Store) UpdateBooking(ctx context.Context, id int64, patch model.BookingPatch) (*model.Booking, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := getBooking(ctx, tx, id)
	if err != nil || b == nil {
		return nil, err
	}

	patch.Apply(b)
	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET start_date = ?, end_date = ?, status = ?, total_price = ?, location = ?
		 WHERE id = ?`,
		b.StartDate.UTC(), b.EndDate.UTC(), b.Status, b.TotalPrice, nullString(b.Location), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing booking update: %w", err)
	}
	return b, nil
}

// UpdateBookingStatus sets a booking's status to any given value.
func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status string) (*model.Booking, error) {
	return s.UpdateBooking(ctx, id, model.BookingPatch{Status: &status})
}
