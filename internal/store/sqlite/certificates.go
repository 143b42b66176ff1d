package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

// GetCertificate returns a certificate by ID, or nil if it does not exist.
func (s *Store) GetCertificate(ctx context.Context, id int64) (*model.Certificate, error) {
	var c model.Certificate
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, issued_at FROM certificates WHERE id = ?`, id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.IssuedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting certificate: %w", err)
	}
	return &c, nil
}

func (s *Store) listCertificates(ctx context.Context, where string, args ...any) ([]model.Certificate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, issued_at FROM certificates `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}
	defer rows.Close()

	certs := []model.Certificate{}
	for rows.Next() {
		var c model.Certificate
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.IssuedAt); err != nil {
			return nil, fmt.Errorf("scanning certificate: %w", err)
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// ListCertificates returns all certificates in ID order.
func (s *Store) ListCertificates(ctx context.Context) ([]model.Certificate, error) {
	return s.listCertificates(ctx, "")
}

// ListCertificatesByUser returns the certificates issued to a user.
func (s *Store) ListCertificatesByUser(ctx context.Context, userID int64) ([]model.Certificate, error) {
	return s.listCertificates(ctx, "WHERE user_id = ?", userID)
}

// CreateCertificate issues a new certificate at the current time.
func (s *Store) CreateCertificate(ctx context.Context, n model.NewCertificate) (*model.Certificate, error) {
	issuedAt := s.timestamp()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO certificates (user_id, name, issued_at) VALUES (?, ?, ?)`,
		n.UserID, n.Name, issuedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating certificate: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting certificate id: %w", err)
	}

	return &model.Certificate{ID: id, UserID: n.UserID, Name: n.Name, IssuedAt: issuedAt}, nil
}
