package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser   = "user"
	RoleWriter = "writer"
	RoleAdmin  = "admin"
)

type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Bio         *string   `json:"bio"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p *Profile) CanPublish() bool {
	return p.Role == RoleWriter || p.Role == RoleAdmin
}

// Author is the public projection of a profile joined onto posts and comments.
type Author struct {
	ID          uuid.UUID `json:"id"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Role        string    `json:"role"`
}
