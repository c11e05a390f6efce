package postgres

import (
	"context"
	"strconv"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func newProfileRepo(db *pgxpool.Pool) Profile {
	return &profileRepo{
		db: db,
	}
}

const profileSelect = "SELECT p.id, p.email, p.display_name, p.avatar_url, p.bio, p.role, p.created_at, p.updated_at FROM profiles p"

func (r *profileRepo) Create(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO profiles(id, email, display_name, avatar_url, bio, role)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		profile.AvatarURL,
		profile.Bio,
		profile.Role,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepo) scanOne(ctx context.Context, query string, args ...interface{}) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Role,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return r.scanOne(ctx, profileSelect+" WHERE p.id = $1", id)
}

func (r *profileRepo) FindAuthors(ctx context.Context, limit int, offset int) ([]*model.Profile, int64, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.email, p.display_name, p.avatar_url, p.bio, p.role, p.created_at, p.updated_at,
		COUNT(*) OVER() AS total
		FROM profiles p
		WHERE p.role IN ('writer', 'admin')
		ORDER BY p.created_at ASC
		LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []*model.Profile
	var total int64
	for rows.Next() {
		var profile model.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.Email,
			&profile.DisplayName,
			&profile.AvatarURL,
			&profile.Bio,
			&profile.Role,
			&profile.CreatedAt,
			&profile.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, err
		}

		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *profileRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"display_name", "avatar_url", "bio"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE profiles SET "
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

func (r *profileRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	_, err := r.db.Exec(ctx, "UPDATE profiles SET role = $1, updated_at = now() WHERE id = $2", role, id)
	return err
}
