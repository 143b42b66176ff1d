package model

import "time"

// Message is a chat message between two users.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sentAt"`
	IsRead     bool      `json:"isRead"`
}

type NewMessage struct {
	SenderID   int64  `json:"senderId" validate:"required,gt=0"`
	ReceiverID int64  `json:"receiverId" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required"`
}
