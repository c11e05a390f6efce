package dto

import "github.com/google/uuid"

type CreatePostDto struct {
	Title         string      `json:"title" binding:"required,min=2"`
	Excerpt       *string     `json:"excerpt"`
	Content       string      `json:"content" binding:"required"`
	FeaturedImage *string     `json:"featured_image"`
	CategoryID    *uuid.UUID  `json:"category_id"`
	TagIDs        []uuid.UUID `json:"tag_ids"`
	IsFeatured    bool        `json:"is_featured"`
}

type EditPostDto struct {
	Title         *string     `json:"title"`
	Excerpt       *string     `json:"excerpt"`
	Content       *string     `json:"content"`
	FeaturedImage *string     `json:"featured_image"`
	CategoryID    *uuid.UUID  `json:"category_id"`
	TagIDs        []uuid.UUID `json:"tag_ids"`
	IsFeatured    *bool       `json:"is_featured"`
}

type UpdatePostStatusDto struct {
	Status string `json:"status" binding:"required,oneof=draft review published"`
}
