package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PostStatusDraft     = "draft"
	PostStatusReview    = "review"
	PostStatusPublished = "published"
)

type Post struct {
	ID            uuid.UUID  `json:"id"`
	AuthorID      uuid.UUID  `json:"author_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage *string    `json:"featured_image"`
	Status        string     `json:"status"`
	IsFeatured    bool       `json:"is_featured"`
	ReadingTime   *int       `json:"reading_time"`
	Views         int64      `json:"views"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type FullPost struct {
	Post          Post      `json:"post"`
	Author        Author    `json:"author"`
	Category      *Category `json:"category"`
	Tags          []*Tag    `json:"tags"`
	ContentHTML   string    `json:"content_html"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
}

// PostListItem is the card shape used by listings; content is omitted.
type PostListItem struct {
	Post          Post      `json:"post"`
	Author        Author    `json:"author"`
	Category      *Category `json:"category"`
	Tags          []*Tag    `json:"tags"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
}

type Like struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SiteStats struct {
	PostsTotal     int64 `json:"posts_total"`
	PostsPublished int64 `json:"posts_published"`
	PostsInReview  int64 `json:"posts_in_review"`
	PostsDraft     int64 `json:"posts_draft"`
	CommentsTotal  int64 `json:"comments_total"`
	LikesTotal     int64 `json:"likes_total"`
	AuthorsTotal   int64 `json:"authors_total"`
	ViewsTotal     int64 `json:"views_total"`
}
