package model

import (
	"slices"
	"time"
)

// DiyProject is an inspiration guide listing the tools it needs.
type DiyProject struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Duration      string    `json:"duration"`
	Difficulty    *string   `json:"difficulty"`
	ToolsRequired []string  `json:"toolsRequired"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Clone returns a copy of p sharing no memory with it.
func (p DiyProject) Clone() DiyProject {
	p.Difficulty = clonePtr(p.Difficulty)
	p.ToolsRequired = slices.Clone(p.ToolsRequired)
	return p
}

type NewDiyProject struct {
	Title         string   `json:"title" yaml:"title" validate:"required"`
	Description   string   `json:"description" yaml:"description" validate:"required"`
	Image         string   `json:"image" yaml:"image" validate:"required"`
	Duration      string   `json:"duration" yaml:"duration" validate:"required"`
	Difficulty    *string  `json:"difficulty" yaml:"difficulty"`
	ToolsRequired []string `json:"toolsRequired" yaml:"toolsRequired"`
	Type          string   `json:"type" yaml:"type" validate:"required"`
}

// DiyProject builds the stored form of n.
func (n NewDiyProject) DiyProject(id int64, createdAt time.Time) DiyProject {
	return DiyProject{
		ID:            id,
		Title:         n.Title,
		Description:   n.Description,
		Image:         n.Image,
		Duration:      n.Duration,
		Difficulty:    n.Difficulty,
		ToolsRequired: n.ToolsRequired,
		Type:          n.Type,
		CreatedAt:     createdAt,
	}.Clone()
}
