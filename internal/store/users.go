package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// GetUser returns a user by ID.
func (m *Memory) GetUser(_ context.Context, id int64) (*model.User, error) {
	return m.users.get(id), nil
}

// GetUserByUsername returns a user by username.
func (m *Memory) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	users := m.users.scan(func(u model.User) bool { return u.Username == username })
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// ListUsers returns all users.
func (m *Memory) ListUsers(_ context.Context) ([]model.User, error) {
	return m.users.scan(nil), nil
}

// CreateUser creates a new user, rejecting a username that is already taken.
func (m *Memory) CreateUser(_ context.Context, n model.NewUser) (*model.User, error) {
	u, ok := m.users.insertUnless(
		func(u model.User) bool { return u.Username == n.Username },
		func(id int64) model.User { return n.User(id, m.now()) },
	)
	if !ok {
		return nil, ErrDuplicateUsername
	}
	return &u, nil
}
