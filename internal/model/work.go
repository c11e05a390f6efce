package model

import (
	"time"

	"github.com/google/uuid"
)

// Work is a portfolio entry shown on the works page.
type Work struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	Content       *string   `json:"content"`
	FeaturedImage *string   `json:"featured_image"`
	Category      *string   `json:"category"`
	Tags          []string  `json:"tags"`
	ProjectURL    *string   `json:"project_url"`
	GithubURL     *string   `json:"github_url"`
	OrderIndex    int       `json:"order_index"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
