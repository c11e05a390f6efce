package postgres

import (
	"context"
	"strconv"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepo struct {
	db *pgxpool.Pool
}

func newCategoryRepo(db *pgxpool.Pool) Category {
	return &categoryRepo{
		db: db,
	}
}

func (r *categoryRepo) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO categories(name, slug, color, icon) VALUES($1, $2, $3, $4) RETURNING id",
		category.Name,
		category.Slug,
		category.Color,
		category.Icon,
	).Scan(&category.ID); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT c.id, c.name, c.slug, c.color, c.icon FROM categories c ORDER BY c.name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Color, &category.Icon); err != nil {
			return nil, err
		}

		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id, c.name, c.slug, c.color, c.icon FROM categories c WHERE c.slug = $1",
		slug,
	).Scan(&category.ID, &category.Name, &category.Slug, &category.Color, &category.Icon); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"name", "slug", "color", "icon"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE categories SET "
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

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}
