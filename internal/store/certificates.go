package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// GetCertificate returns a certificate by ID, or nil if it does not exist.
func (m *Memory) GetCertificate(_ context.Context, id int64) (*model.Certificate, error) {
	return m.certificates.get(id), nil
}

// ListCertificates returns all certificates in ID order.
func (m *Memory) ListCertificates(_ context.Context) ([]model.Certificate, error) {
	return m.certificates.scan(nil), nil
}

// ListCertificatesByUser returns the certificates issued to a user.
func (m *Memory) ListCertificatesByUser(_ context.Context, userID int64) ([]model.Certificate, error) {
	return m.certificates.scan(func(c model.Certificate) bool { return c.UserID == userID }), nil
}

// CreateCertificate issues a new certificate at the current time.
func (m *Memory) CreateCertificate(_ context.Context, n model.NewCertificate) (*model.Certificate, error) {
	c := m.certificates.insert(func(id int64) model.Certificate {
		return model.Certificate{ID: id, UserID: n.UserID, Name: n.Name, IssuedAt: m.now()}
	})
	return &c, nil
}
