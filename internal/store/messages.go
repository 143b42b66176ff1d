package store

import (
	"context"
	"slices"

	"github.com/erazemk/izposoja/internal/model"
)

// ListMessagesBetween returns the messages exchanged between two users in
// either direction, oldest first. Equal timestamps order by ID.
func (m *Memory) ListMessagesBetween(_ context.Context, userA, userB int64) ([]model.Message, error) {
	msgs := m.messages.scan(func(msg model.Message) bool {
		return (msg.SenderID == userA && msg.ReceiverID == userB) ||
			(msg.SenderID == userB && msg.ReceiverID == userA)
	})
	// scan already yields ID order, so a stable sort keeps it for ties.
	slices.SortStableFunc(msgs, func(a, b model.Message) int { return a.SentAt.Compare(b.SentAt) })
	return msgs, nil
}

// SendMessage stores a new unread message.
func (m *Memory) SendMessage(_ context.Context, n model.NewMessage) (*model.Message, error) {
	msg := m.messages.insert(func(id int64) model.Message {
		return model.Message{ID: id, SenderID: n.SenderID, ReceiverID: n.ReceiverID, Content: n.Content, SentAt: m.now()}
	})
	return &msg, nil
}

// MarkMessagesRead marks every unread message from sender to receiver as
// read and returns how many changed.
func (m *Memory) MarkMessagesRead(_ context.Context, senderID, receiverID int64) (int, error) {
	n := m.messages.updateWhere(
		func(msg model.Message) bool {
			return msg.SenderID == senderID && msg.ReceiverID == receiverID && !msg.IsRead
		},
		func(msg *model.Message) { msg.IsRead = true },
	)
	return n, nil
}
