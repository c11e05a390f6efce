package dto

type UpdateProfileDto struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
}

type CreateAuthorDto struct {
	Email       string  `json:"email" binding:"required,email"`
	DisplayName string  `json:"display_name" binding:"required,min=1"`
	Bio         *string `json:"bio"`
	Role        string  `json:"role" binding:"required,oneof=user writer admin"`
}

type UpdateAuthorRoleDto struct {
	Role string `json:"role" binding:"required,oneof=user writer admin"`
}
