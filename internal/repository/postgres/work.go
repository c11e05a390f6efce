package postgres

import (
	"context"
	"strconv"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workRepo struct {
	db *pgxpool.Pool
}

func newWorkRepo(db *pgxpool.Pool) Work {
	return &workRepo{
		db: db,
	}
}

const workSelect = `SELECT w.id, w.title, w.slug, w.description, w.content, w.featured_image,
	w.category, w.tags, w.project_url, w.github_url, w.order_index, w.is_featured, w.created_at, w.updated_at
	FROM works w`

func (r *workRepo) Create(ctx context.Context, work model.Work) (*model.Work, error) {
	if work.Tags == nil {
		work.Tags = []string{}
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO works(title, slug, description, content, featured_image, category, tags, project_url, github_url, order_index, is_featured)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		work.Title,
		work.Slug,
		work.Description,
		work.Content,
		work.FeaturedImage,
		work.Category,
		work.Tags,
		work.ProjectURL,
		work.GithubURL,
		work.OrderIndex,
		work.IsFeatured,
	).Scan(&work.ID, &work.CreatedAt, &work.UpdatedAt); err != nil {
		return nil, err
	}

	return &work, nil
}

func (r *workRepo) scanWork(row interface{ Scan(dest ...any) error }) (*model.Work, error) {
	var work model.Work
	if err := row.Scan(
		&work.ID,
		&work.Title,
		&work.Slug,
		&work.Description,
		&work.Content,
		&work.FeaturedImage,
		&work.Category,
		&work.Tags,
		&work.ProjectURL,
		&work.GithubURL,
		&work.OrderIndex,
		&work.IsFeatured,
		&work.CreatedAt,
		&work.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *workRepo) FindAll(ctx context.Context) ([]*model.Work, error) {
	rows, err := r.db.Query(ctx, workSelect+" ORDER BY w.order_index ASC, w.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var works []*model.Work
	for rows.Next() {
		work, err := r.scanWork(rows)
		if err != nil {
			return nil, err
		}

		works = append(works, work)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return works, nil
}

func (r *workRepo) FindBySlug(ctx context.Context, slug string) (*model.Work, error) {
	return r.scanWork(r.db.QueryRow(ctx, workSelect+" WHERE w.slug = $1", slug))
}

func (r *workRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"title", "slug", "description", "content", "featured_image", "category", "tags", "project_url", "github_url", "order_index", "is_featured"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE works SET "
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

func (r *workRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM works WHERE id = $1", id)
	return err
}
