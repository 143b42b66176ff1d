package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// GetTestimonial returns a testimonial by ID, or nil if it does not exist.
func (m *Memory) GetTestimonial(_ context.Context, id int64) (*model.Testimonial, error) {
	return m.testimonials.get(id), nil
}

// ListTestimonials returns all testimonials in ID order.
func (m *Memory) ListTestimonials(_ context.Context) ([]model.Testimonial, error) {
	return m.testimonials.scan(nil), nil
}

// ListTestimonialsByItem returns the testimonials left for an item.
func (m *Memory) ListTestimonialsByItem(_ context.Context, itemID int64) ([]model.Testimonial, error) {
	return m.testimonials.scan(func(t model.Testimonial) bool { return t.ItemID == itemID }), nil
}

// ListTestimonialsWithUserByItem returns an item's testimonials with their
// authors attached, nil where the author does not exist.
func (m *Memory) ListTestimonialsWithUserByItem(ctx context.Context, itemID int64) ([]model.TestimonialWithUser, error) {
	ts, _ := m.ListTestimonialsByItem(ctx, itemID)
	out := make([]model.TestimonialWithUser, 0, len(ts))
	for _, t := range ts {
		out = append(out, model.TestimonialWithUser{Testimonial: t, User: m.users.get(t.UserID)})
	}
	return out, nil
}

// CreateTestimonial stores a new testimonial stamped with the current time.
func (m *Memory) CreateTestimonial(_ context.Context, n model.NewTestimonial) (*model.Testimonial, error) {
	t := m.testimonials.insert(func(id int64) model.Testimonial {
		return model.Testimonial{ID: id, ItemID: n.ItemID, UserID: n.UserID, Rating: n.Rating, Comment: n.Comment, CreatedAt: m.now()}
	})
	return &t, nil
}
