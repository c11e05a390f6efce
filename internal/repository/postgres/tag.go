package postgres

import (
	"context"
	"strconv"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tagRepo struct {
	db *pgxpool.Pool
}

func newTagRepo(db *pgxpool.Pool) Tag {
	return &tagRepo{
		db: db,
	}
}

func (r *tagRepo) Create(ctx context.Context, tag model.Tag) (*model.Tag, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO tags(name, slug, color) VALUES($1, $2, $3) RETURNING id",
		tag.Name,
		tag.Slug,
		tag.Color,
	).Scan(&tag.ID); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (r *tagRepo) FindAll(ctx context.Context) ([]*model.Tag, error) {
	rows, err := r.db.Query(ctx, "SELECT t.id, t.name, t.slug, t.color FROM tags t ORDER BY t.name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			return nil, err
		}

		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

func (r *tagRepo) FindBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.QueryRow(
		ctx,
		"SELECT t.id, t.name, t.slug, t.color FROM tags t WHERE t.slug = $1",
		slug,
	).Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (r *tagRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"name", "slug", "color"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE tags SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *tagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM tags WHERE id = $1", id)
	return err
}
