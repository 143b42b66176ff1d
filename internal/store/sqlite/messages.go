package sqlite

import (
	"context"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

// ListMessagesBetween returns the messages exchanged between two users in
// either direction, oldest first.
func (s *Store) ListMessagesBetween(ctx context.Context, userA, userB int64) ([]model.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sender_id, receiver_id, content, sent_at, is_read FROM messages
		 WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		 ORDER BY sent_at, id`,
		userA, userB, userB, userA,
	)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	msgs := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.SentAt, &m.IsRead); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// SendMessage stores a new unread message.
func (s *Store) SendMessage(ctx context.Context, n model.NewMessage) (*model.Message, error) {
	sentAt := s.timestamp()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, content, sent_at) VALUES (?, ?, ?, ?)`,
		n.SenderID, n.ReceiverID, n.Content, sentAt,
	)
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting message id: %w", err)
	}

	return &model.Message{ID: id, SenderID: n.SenderID, ReceiverID: n.ReceiverID, Content: n.Content, SentAt: sentAt}, nil
}

// MarkMessagesRead marks unread messages from sender to receiver as read.
func (s *Store) MarkMessagesRead(ctx context.Context, senderID, receiverID int64) (int, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE messages SET is_read = 1 WHERE sender_id = ? AND receiver_id = ? AND is_read = 0`,
		senderID, receiverID,
	)
	if err != nil {
		return 0, fmt.Errorf("marking messages read: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting read messages: %w", err)
	}
	return int(n), nil
}
