package model

import "time"

// Testimonial is a user's rating and review of an item.
type Testimonial struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"itemId"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewTestimonial struct {
	ItemID  int64  `json:"itemId" yaml:"itemId" validate:"required,gt=0"`
	UserID  int64  `json:"userId" yaml:"userId" validate:"required,gt=0"`
	Rating  int    `json:"rating" yaml:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" yaml:"comment" validate:"required"`
}

// TestimonialWithUser is a testimonial joined with its author. User is nil
// when the author does not exist.
type TestimonialWithUser struct {
	Testimonial
	User *User `json:"user"`
}
