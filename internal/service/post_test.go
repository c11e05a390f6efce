package service

import (
	"context"
	"testing"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/InkwellPress/blog-service/internal/repository/postgres"
	"github.com/InkwellPress/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthorPostRepo struct {
	postgres.Post
	all       []*model.PostListItem
	published []*model.PostListItem
}

func (f *fakeAuthorPostRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, int64, error) {
	return f.all, int64(len(f.all)), nil
}

func (f *fakeAuthorPostRepo) FindPublishedByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, int64, error) {
	return f.published, int64(len(f.published)), nil
}

func TestPostService_ListByAuthor_Visibility(t *testing.T) {
	authorID := uuid.New()

	listItem := func(status string) *model.PostListItem {
		return &model.PostListItem{Post: model.Post{ID: uuid.New(), AuthorID: authorID, Status: status}}
	}
	published := listItem(model.PostStatusPublished)
	posts := &fakeAuthorPostRepo{
		all:       []*model.PostListItem{published, listItem(model.PostStatusDraft), listItem(model.PostStatusReview)},
		published: []*model.PostListItem{published},
	}

	svc := newPostService(zap.NewNop(), &repository.Repository{
		Postgres: &postgres.PostgresRepository{Post: posts},
		Redis:    &redisrepo.RedisRepository{Default: newFakeRedis()},
	})

	ctx := context.Background()
	author := &model.Profile{ID: authorID, Role: model.RoleWriter}
	admin := &model.Profile{ID: uuid.New(), Role: model.RoleAdmin}
	stranger := &model.Profile{ID: uuid.New(), Role: model.RoleUser}

	cases := []struct {
		name      string
		requester *model.Profile
		wantRows  int
	}{
		{"anonymous", nil, 1},
		{"other user", stranger, 1},
		{"the author", author, 3},
		{"admin", admin, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, total, err := svc.ListByAuthor(ctx, authorID, tc.requester, 10, 0)
			require.NoError(t, err)

			// the total must match the visible rows, not the raw row count
			assert.Len(t, rows, tc.wantRows)
			assert.Equal(t, int64(tc.wantRows), total)
		})
	}
}
