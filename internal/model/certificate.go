package model

import "time"

// Certificate is a training certificate held by a user.
type Certificate struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Name     string    `json:"name"`
	IssuedAt time.Time `json:"issuedAt"`
}

type NewCertificate struct {
	UserID int64  `json:"userId" yaml:"userId" validate:"required,gt=0"`
	Name   string `json:"name" yaml:"name" validate:"required"`
}
