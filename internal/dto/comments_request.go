package dto

import "github.com/google/uuid"

type CreateCommentDto struct {
	PostID   uuid.UUID  `json:"post_id" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
	Content  string     `json:"content" binding:"required"`
}

type UpdateCommentDto struct {
	Content string `json:"content" binding:"required"`
}
