package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

const testimonialColumns = `id, item_id, user_id, rating, comment, created_at`

func scanTestimonial(row scanner) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := row.Scan(&t.ID, &t.ItemID, &t.UserID, &t.Rating, &t.Comment, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTestimonial returns a testimonial by ID, or nil if it does not exist.
func (s *Store) GetTestimonial(ctx context.Context, id int64) (*model.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting testimonial: %w", err)
	}
	return t, nil
}

func (s *Store) listTestimonials(ctx context.Context, where string, args ...any) ([]model.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}
	defer rows.Close()

	ts := []model.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning testimonial: %w", err)
		}
		ts = append(ts, *t)
	}
	return ts, rows.Err()
}

// ListTestimonials returns all testimonials in ID order.
func (s *Store) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.listTestimonials(ctx, "")
}

// ListTestimonialsByItem returns the testimonials left for an item.
func (s *Store) ListTestimonialsByItem(ctx context.Context, itemID int64) ([]model.Testimonial, error) {
	return s.listTestimonials(ctx, "WHERE item_id = ?", itemID)
}

// ListTestimonialsWithUserByItem returns an item's testimonials with their
// authors attached, nil where the author does not exist.
func (s *Store) ListTestimonialsWithUserByItem(ctx context.Context, itemID int64) ([]model.TestimonialWithUser, error) {
	ts, err := s.ListTestimonialsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	out := make([]model.TestimonialWithUser, 0, len(ts))
	for _, t := range ts {
		u, err := s.GetUser(ctx, t.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.TestimonialWithUser{Testimonial: t, User: u})
	}
	return out, nil
}

// CreateTestimonial stores a new testimonial stamped with the current time.
func (s *Store) CreateTestimonial(ctx context.Context, n model.NewTestimonial) (*model.Testimonial, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO testimonials (item_id, user_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?)`,
		n.ItemID, n.UserID, n.Rating, n.Comment, s.timestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating testimonial: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting testimonial id: %w", err)
	}

	return s.GetTestimonial(ctx, id)
}
