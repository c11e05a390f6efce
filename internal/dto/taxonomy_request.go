package dto

type CreateCategoryDto struct {
	Name  string `json:"name" binding:"required,min=1"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type UpdateCategoryDto struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

type CreateTagDto struct {
	Name  string `json:"name" binding:"required,min=1"`
	Color string `json:"color"`
}

type UpdateTagDto struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
