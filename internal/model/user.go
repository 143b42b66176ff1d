package model

import "time"

// User is a registered renter or item owner.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	FullName     string    `json:"fullName"`
	Occupation   *string   `json:"occupation"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser holds the caller-supplied fields of a user.
type NewUser struct {
	Username     string  `json:"username" yaml:"username" validate:"required,max=64"`
	Password     string  `json:"password" yaml:"password" validate:"required"`
	FullName     string  `json:"fullName" yaml:"fullName" validate:"required"`
	Occupation   *string `json:"occupation" yaml:"occupation"`
	ProfileImage *string `json:"profileImage" yaml:"profileImage"`
}

// Clone returns a copy of u sharing no memory with it.
func (u User) Clone() User {
	u.Occupation = clonePtr(u.Occupation)
	u.ProfileImage = clonePtr(u.ProfileImage)
	return u
}

// User builds the stored form of n.
func (n NewUser) User(id int64, createdAt time.Time) User {
	return User{
		ID:           id,
		Username:     n.Username,
		Password:     n.Password,
		FullName:     n.FullName,
		Occupation:   n.Occupation,
		ProfileImage: n.ProfileImage,
		CreatedAt:    createdAt,
	}.Clone()
}
