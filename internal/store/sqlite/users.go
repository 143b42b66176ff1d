package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

const userColumns = `id, username, password, full_name, occupation, profile_image, created_at`

func scanUser(row scanner) (*model.User, error) {
	var u model.User
	var occupation, profileImage sql.NullString
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &occupation, &profileImage, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Occupation = stringPtr(occupation)
	u.ProfileImage = stringPtr(profileImage)
	return &u, nil
}

// GetUser returns a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByUsername returns a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by username: %w", err)
	}
	return u, nil
}

// ListUsers returns all users.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// CreateUser creates a new user.
func (s *Store) CreateUser(ctx context.Context, n model.NewUser) (*model.User, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, full_name, occupation, profile_image, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.Username, n.Password, n.FullName, nullString(n.Occupation), nullString(n.ProfileImage), s.timestamp(),
	)
	if isUniqueConstraintError(err) {
		return nil, store.ErrDuplicateUsername
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return s.GetUser(ctx, id)
}
