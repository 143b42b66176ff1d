package model

import "time"

// Booking statuses used by the rental flow. The store accepts any string.
const (
	BookingStatusActive    = "active"
	BookingStatusReturning = "returning"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a hire of one item by one user.
type Booking struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"itemId"`
	UserID     int64     `json:"userId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Status     string    `json:"status"`
	TotalPrice int       `json:"totalPrice"`
	Location   *string   `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Clone returns a copy of b sharing no memory with it.
func (b Booking) Clone() Booking {
	b.Location = clonePtr(b.Location)
	return b
}

// NewBooking holds the caller-supplied fields of a booking.
type NewBooking struct {
	ItemID     int64   `json:"itemId" validate:"required,gt=0"`
	UserID     int64   `json:"userId" validate:"required,gt=0"`
	StartDate  Date    `json:"startDate" validate:"required"`
	EndDate    Date    `json:"endDate" validate:"required"`
	Status     string  `json:"status" validate:"required"`
	TotalPrice *int    `json:"totalPrice" validate:"required,gte=0"`
	Location   *string `json:"location"`
}

// Booking builds the stored form of n.
func (n NewBooking) Booking(id int64, createdAt time.Time) Booking {
	return Booking{
		ID:         id,
		ItemID:     n.ItemID,
		UserID:     n.UserID,
		StartDate:  n.StartDate.Time,
		EndDate:    n.EndDate.Time,
		Status:     n.Status,
		TotalPrice: value(n.TotalPrice),
		Location:   clonePtr(n.Location),
		CreatedAt:  createdAt,
	}
}

// BookingPatch is a partial booking update. Nil fields are left unchanged.
type BookingPatch struct {
	StartDate  *Date            `json:"startDate"`
	EndDate    *Date            `json:"endDate"`
	Status     *string          `json:"status" validate:"omitempty,min=1"`
	TotalPrice *int             `json:"totalPrice" validate:"omitempty,gte=0"`
	Location   Nullable[string] `json:"location"`
}

// Apply merges the set fields of p over b. ID, references and CreatedAt are
// never touched.
func (p BookingPatch) Apply(b *Booking) {
	if p.StartDate != nil {
		b.StartDate = p.StartDate.Time
	}
	if p.EndDate != nil {
		b.EndDate = p.EndDate.Time
	}
	set(&b.Status, p.Status)
	set(&b.TotalPrice, p.TotalPrice)
	setNullable(&b.Location, p.Location)
}

// BookingWithItem is a booking joined with the item it references.
// Item is nil when the referenced item does not exist.
type BookingWithItem struct {
	Booking
	Item *Item `json:"item"`
}
