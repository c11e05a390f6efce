package postgres

import (
	"context"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(post_id, author_id, parent_id, content) VALUES($1, $2, $3, $4) RETURNING id, created_at, updated_at",
		comment.PostID,
		comment.AuthorID,
		comment.ParentID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id, c.post_id, c.author_id, c.parent_id, c.content, c.created_at, c.updated_at FROM comments c WHERE c.id = $1",
		id,
	).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.ParentID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

// FindByPost returns the flat comment list for a post joined with the
// author's public profile, ascending by created_at so the tree builder
// gets chronological sibling order for free.
func (r *commentRepo) FindByPost(ctx context.Context, postID uuid.UUID) ([]*model.FullComment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.post_id, c.author_id, c.parent_id, c.content, c.created_at, c.updated_at,
		p.id, p.display_name, p.avatar_url, p.role
		FROM comments c
		JOIN profiles p ON c.author_id = p.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.FullComment
	for rows.Next() {
		var comment model.FullComment
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.ParentID,
			&comment.Comment.Content,
			&comment.Comment.CreatedAt,
			&comment.Comment.UpdatedAt,
			&comment.Author.ID,
			&comment.Author.DisplayName,
			&comment.Author.AvatarURL,
			&comment.Author.Role,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		`UPDATE comments SET content = $1, updated_at = now() WHERE id = $2
		RETURNING id, post_id, author_id, parent_id, content, created_at, updated_at`,
		content,
		id,
	).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.ParentID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete removes the comment; the parent_id FK cascade removes the whole
// reply subtree with it.
func (r *commentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}
