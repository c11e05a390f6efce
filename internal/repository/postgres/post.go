package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

const postListSelect = `SELECT
	p.id, p.author_id, p.title, p.slug, p.excerpt, p.content, p.featured_image,
	p.status, p.is_featured, p.reading_time, p.views, p.published_at, p.created_at, p.updated_at,
	u.id, u.display_name, u.avatar_url, u.role,
	COUNT(*) OVER() AS total
	FROM posts p
	JOIN profiles u ON p.author_id = u.id`

func (r *postRepo) Create(ctx context.Context, post model.Post, categoryID *uuid.UUID, tagIDs []uuid.UUID) (*model.Post, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(
		ctx,
		`INSERT INTO posts(author_id, title, slug, excerpt, content, featured_image, status, is_featured, reading_time)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, views, created_at, updated_at`,
		post.AuthorID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.FeaturedImage,
		post.Status,
		post.IsFeatured,
		post.ReadingTime,
	).Scan(&post.ID, &post.Views, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, err
	}

	if categoryID != nil {
		if _, err := tx.Exec(ctx, "INSERT INTO post_categories(post_id, category_id) VALUES($1, $2)", post.ID, *categoryID); err != nil {
			return nil, err
		}
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx, "INSERT INTO post_tags(post_id, tag_id) VALUES($1, $2)", post.ID, tagID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) findOne(ctx context.Context, query string, args ...interface{}) (*model.FullPost, error) {
	var post model.FullPost
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&post.Post.ID,
		&post.Post.AuthorID,
		&post.Post.Title,
		&post.Post.Slug,
		&post.Post.Excerpt,
		&post.Post.Content,
		&post.Post.FeaturedImage,
		&post.Post.Status,
		&post.Post.IsFeatured,
		&post.Post.ReadingTime,
		&post.Post.Views,
		&post.Post.PublishedAt,
		&post.Post.CreatedAt,
		&post.Post.UpdatedAt,
		&post.Author.ID,
		&post.Author.DisplayName,
		&post.Author.AvatarURL,
		&post.Author.Role,
		&post.LikesCount,
		&post.CommentsCount,
	); err != nil {
		return nil, err
	}

	items := []*model.PostListItem{{Post: post.Post}}
	if err := r.attachTaxonomy(ctx, items); err != nil {
		return nil, err
	}
	post.Category = items[0].Category
	post.Tags = items[0].Tags

	return &post, nil
}

const postOneSelect = `SELECT
	p.id, p.author_id, p.title, p.slug, p.excerpt, p.content, p.featured_image,
	p.status, p.is_featured, p.reading_time, p.views, p.published_at, p.created_at, p.updated_at,
	u.id, u.display_name, u.avatar_url, u.role,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count
	FROM posts p
	JOIN profiles u ON p.author_id = u.id`

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error) {
	return r.findOne(ctx, postOneSelect+" WHERE p.id = $1", id)
}

func (r *postRepo) FindPublishedBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	return r.findOne(ctx, postOneSelect+" WHERE p.slug = $1 AND p.status = 'published'", slug)
}

func (r *postRepo) scanList(rows pgx.Rows) ([]*model.PostListItem, int64, error) {
	defer rows.Close()

	var posts []*model.PostListItem
	var total int64
	for rows.Next() {
		var post model.PostListItem
		if err := rows.Scan(
			&post.Post.ID,
			&post.Post.AuthorID,
			&post.Post.Title,
			&post.Post.Slug,
			&post.Post.Excerpt,
			&post.Post.Content,
			&post.Post.FeaturedImage,
			&post.Post.Status,
			&post.Post.IsFeatured,
			&post.Post.ReadingTime,
			&post.Post.Views,
			&post.Post.PublishedAt,
			&post.Post.CreatedAt,
			&post.Post.UpdatedAt,
			&post.Author.ID,
			&post.Author.DisplayName,
			&post.Author.AvatarURL,
			&post.Author.Role,
			&total,
		); err != nil {
			return nil, 0, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// attachTaxonomy batch-fills category, tags and counter fields for the
// given page of posts.
func (r *postRepo) attachTaxonomy(ctx context.Context, posts []*model.PostListItem) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	byID := make(map[uuid.UUID]*model.PostListItem, len(posts))
	for i, p := range posts {
		ids[i] = p.Post.ID.String()
		byID[p.Post.ID] = p
		p.Tags = []*model.Tag{}
	}

	categoryRows, err := r.db.Query(
		ctx,
		`SELECT pc.post_id, c.id, c.name, c.slug, c.color, c.icon
		FROM post_categories pc
		JOIN categories c ON pc.category_id = c.id
		WHERE pc.post_id = ANY($1::uuid[])`,
		ids,
	)
	if err != nil {
		return err
	}
	for categoryRows.Next() {
		var postID uuid.UUID
		var category model.Category
		if err := categoryRows.Scan(&postID, &category.ID, &category.Name, &category.Slug, &category.Color, &category.Icon); err != nil {
			categoryRows.Close()
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Category = &category
		}
	}
	categoryRows.Close()
	if err := categoryRows.Err(); err != nil {
		return err
	}

	tagRows, err := r.db.Query(
		ctx,
		`SELECT pt.post_id, t.id, t.name, t.slug, t.color
		FROM post_tags pt
		JOIN tags t ON pt.tag_id = t.id
		WHERE pt.post_id = ANY($1::uuid[])
		ORDER BY t.name ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	for tagRows.Next() {
		var postID uuid.UUID
		var tag model.Tag
		if err := tagRows.Scan(&postID, &tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			tagRows.Close()
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Tags = append(p.Tags, &tag)
		}
	}
	tagRows.Close()
	if err := tagRows.Err(); err != nil {
		return err
	}

	likeRows, err := r.db.Query(
		ctx,
		"SELECT post_id, COUNT(*) FROM likes WHERE post_id = ANY($1::uuid[]) GROUP BY post_id",
		ids,
	)
	if err != nil {
		return err
	}
	for likeRows.Next() {
		var postID uuid.UUID
		var count int64
		if err := likeRows.Scan(&postID, &count); err != nil {
			likeRows.Close()
			return err
		}
		if p, ok := byID[postID]; ok {
			p.LikesCount = count
		}
	}
	likeRows.Close()
	if err := likeRows.Err(); err != nil {
		return err
	}

	commentRows, err := r.db.Query(
		ctx,
		"SELECT post_id, COUNT(*) FROM comments WHERE post_id = ANY($1::uuid[]) GROUP BY post_id",
		ids,
	)
	if err != nil {
		return err
	}
	for commentRows.Next() {
		var postID uuid.UUID
		var count int64
		if err := commentRows.Scan(&postID, &count); err != nil {
			commentRows.Close()
			return err
		}
		if p, ok := byID[postID]; ok {
			p.CommentsCount = count
		}
	}
	commentRows.Close()
	return commentRows.Err()
}

func (r *postRepo) findList(ctx context.Context, query string, args ...interface{}) ([]*model.PostListItem, int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	posts, total, err := r.scanList(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachTaxonomy(ctx, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepo) FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, int64, error) {
	maxLimit(&limit)

	return r.findList(
		ctx,
		postListSelect+`
		WHERE p.status = 'published'
		ORDER BY p.published_at DESC
		LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
}

func (r *postRepo) FindPublishedByCategory(ctx context.Context, categorySlug string, limit int, offset int) ([]*model.PostListItem, int64, error) {
	maxLimit(&limit)

	return r.findList(
		ctx,
		postListSelect+`
		JOIN post_categories pc ON pc.post_id = p.id
		JOIN categories c ON c.id = pc.category_id
		WHERE p.status = 'published' AND c.slug = $1
		ORDER BY p.published_at DESC
		LIMIT $2 OFFSET $3`,
		categorySlug,
		limit,
		offset,
	)
}

func (r *postRepo) FindPublishedByTag(ctx context.Context, tagSlug string, limit int, offset int) ([]*model.PostListItem, int64, error) {
	maxLimit(&limit)

	return r.findList(
		ctx,
		postListSelect+`
		JOIN post_tags pt ON pt.post_id = p.id
		JOIN tags t ON t.id = pt.tag_id
		WHERE p.status = 'published' AND t.slug = $1
		ORDER BY p.published_at DESC
		LIMIT $2 OFFSET $3`,
		tagSlug,
		limit,
		offset,
	)
}

func (r *postRepo) FindFeatured(ctx context.Context, limit int) ([]*model.PostListItem, error) {
	maxLimit(&limit)

	posts, _, err := r.findList(
		ctx,
		postListSelect+`
		WHERE p.status = 'published' AND p.is_featured = true
		ORDER BY p.published_at DESC
		LIMIT $1`,
		limit,
	)
	return posts, err
}

func (r *postRepo) SearchPublishedByTitle(ctx context.Context, query string, limit int, offset int) ([]*model.PostListItem, int64, error) {
	maxLimit(&limit)

	return r.findList(
		ctx,
		postListSelect+`
		WHERE p.status = 'published' AND p.title ILIKE '%' || $1 || '%'
		ORDER BY p.published_at DESC
		LIMIT $2 OFFSET $3`,
		query,
		limit,
		offset,
	)
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, int64, error) {
	maxLimit(&limit)

	return r.findList(
		ctx,
		postListSelect+`
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`,
		authorID,
		limit,
		offset,
	)
}

func (r *postRepo) FindPublishedByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, int64, error) {
	maxLimit(&limit)

	return r.findList(
		ctx,
		postListSelect+`
		WHERE p.author_id = $1 AND p.status = 'published'
		ORDER BY p.published_at DESC
		LIMIT $2 OFFSET $3`,
		authorID,
		limit,
		offset,
	)
}

func (r *postRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"title", "slug", "excerpt", "content", "featured_image", "is_featured", "reading_time"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE posts SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query += "updated_at = now() WHERE id = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *postRepo) SetCategory(ctx context.Context, postID uuid.UUID, categoryID *uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM post_categories WHERE post_id = $1", postID); err != nil {
		return err
	}
	if categoryID != nil {
		if _, err := tx.Exec(ctx, "INSERT INTO post_categories(post_id, category_id) VALUES($1, $2)", postID, *categoryID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postRepo) SetTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM post_tags WHERE post_id = $1", postID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx, "INSERT INTO post_tags(post_id, tag_id) VALUES($1, $2)", postID, tagID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, publishedAt *time.Time) error {
	if publishedAt != nil {
		_, err := r.db.Exec(ctx, "UPDATE posts SET status = $1, published_at = $2, updated_at = now() WHERE id = $3", status, *publishedAt, id)
		return err
	}

	_, err := r.db.Exec(ctx, "UPDATE posts SET status = $1, updated_at = now() WHERE id = $2", status, id)
	return err
}

func (r *postRepo) IncrViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET views = views + 1 WHERE id = $1", id)
	return err
}

func (r *postRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)", slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}
