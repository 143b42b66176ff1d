package store

import (
	"context"

	"github.com/erazemk/izposoja/internal/model"
)

// GetDiyProject returns a DIY project by ID, or nil if it does not exist.
func (m *Memory) GetDiyProject(_ context.Context, id int64) (*model.DiyProject, error) {
	return m.projects.get(id), nil
}

// ListDiyProjects returns all DIY projects in ID order.
func (m *Memory) ListDiyProjects(_ context.Context) ([]model.DiyProject, error) {
	return m.projects.scan(nil), nil
}

// CreateDiyProject stores a new DIY project.
func (m *Memory) CreateDiyProject(_ context.Context, n model.NewDiyProject) (*model.DiyProject, error) {
	p := m.projects.insert(func(id int64) model.DiyProject { return n.DiyProject(id, m.now()) })
	return &p, nil
}
