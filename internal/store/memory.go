package store

import (
	"time"

	"github.com/erazemk/izposoja/internal/model"
)

var _ Store = (*Memory)(nil)

// Memory is a Store kept entirely in process memory. Each collection has its
// own lock; joins read the two collections one after the other.
type Memory struct {
	now func() time.Time

	users        *table[model.User]
	items        *table[model.Item]
	bookings     *table[model.Booking]
	saved        *table[model.SavedItem]
	recent       *table[model.RecentlyViewedItem]
	testimonials *table[model.Testimonial]
	certificates *table[model.Certificate]
	projects     *table[model.DiyProject]
	messages     *table[model.Message]
}

// Option configures a Memory store.
type Option func(*Memory)

// WithClock sets the function used to timestamp new and touched records.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) { m.now = now }
}

// NewMemory returns an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		now:          time.Now,
		users:        newTable(model.User.Clone),
		items:        newTable(model.Item.Clone),
		bookings:     newTable(model.Booking.Clone),
		saved:        newTable[model.SavedItem](nil),
		recent:       newTable[model.RecentlyViewedItem](nil),
		testimonials: newTable[model.Testimonial](nil),
		certificates: newTable[model.Certificate](nil),
		projects:     newTable(model.DiyProject.Clone),
		messages:     newTable[model.Message](nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
