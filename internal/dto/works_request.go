package dto

type CreateWorkDto struct {
	Title         string   `json:"title" binding:"required,min=1"`
	Description   *string  `json:"description"`
	Content       *string  `json:"content"`
	FeaturedImage *string  `json:"featured_image"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	ProjectURL    *string  `json:"project_url"`
	GithubURL     *string  `json:"github_url"`
	OrderIndex    int      `json:"order_index"`
	IsFeatured    bool     `json:"is_featured"`
}

type UpdateWorkDto struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Content       *string  `json:"content"`
	FeaturedImage *string  `json:"featured_image"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	ProjectURL    *string  `json:"project_url"`
	GithubURL     *string  `json:"github_url"`
	OrderIndex    *int     `json:"order_index"`
	IsFeatured    *bool    `json:"is_featured"`
}
