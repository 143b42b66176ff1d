package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

const projectColumns = `id, title, description, image, duration, difficulty, tools_required, type, created_at`

func scanProject(row scanner) (*model.DiyProject, error) {
	var p model.DiyProject
	var difficulty, tools sql.NullString
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Duration,
		&difficulty, &tools, &p.Type, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Difficulty = stringPtr(difficulty)
	if err := decodeJSON(tools, &p.ToolsRequired); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetDiyProject returns a DIY project by ID, or nil if it does not exist.
func (s *Store) GetDiyProject(ctx context.Context, id int64) (*model.DiyProject, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM diy_projects WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting diy project: %w", err)
	}
	return p, nil
}

// ListDiyProjects returns all DIY projects in ID order.
func (s *Store) ListDiyProjects(ctx context.Context) ([]model.DiyProject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM diy_projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing diy projects: %w", err)
	}
	defer rows.Close()

	projects := []model.DiyProject{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning diy project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// CreateDiyProject stores a new DIY project.
func (s *Store) CreateDiyProject(ctx context.Context, n model.NewDiyProject) (*model.DiyProject, error) {
	tools, err := encodeList(n.ToolsRequired)
	if err != nil {
		return nil, fmt.Errorf("creating diy project: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO diy_projects (title, description, image, duration, difficulty, tools_required, type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.Title, n.Description, n.Image, n.Duration, nullString(n.Difficulty), tools, n.Type, s.timestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating diy project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting diy project id: %w", err)
	}

	return s.GetDiyProject(ctx, id)
}
