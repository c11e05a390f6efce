package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/InkwellPress/blog-service/internal/repository/postgres"
	"github.com/InkwellPress/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRedis always misses on reads and records writes, so services hit
// the fake postgres repos directly.
type fakeRedis struct {
	sets map[string]interface{}
	dels []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{sets: make(map[string]interface{})}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.sets[key] = value
	return nil
}

func (f *fakeRedis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.sets[key] = value
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetErr(redis.Nil)
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.dels = append(f.dels, keys...)
	return redis.NewIntCmd(ctx)
}

func (f *fakeRedis) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	return redis.NewStringSliceCmd(ctx)
}

type fakePostRepo struct {
	postgres.Post
	posts map[uuid.UUID]*model.FullPost
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return post, nil
}

type fakeProfileRepo struct {
	postgres.Profile
	profiles map[uuid.UUID]*model.Profile
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return profile, nil
}

type fakeCommentRepo struct {
	comments    map[uuid.UUID]*model.Comment
	profiles    *fakeProfileRepo
	seq         int
	createCalls int
}

func newFakeCommentRepo(profiles *fakeProfileRepo) *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: make(map[uuid.UUID]*model.Comment),
		profiles: profiles,
	}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	f.createCalls++
	f.seq++
	comment.ID = uuid.New()
	comment.CreatedAt = time.Unix(int64(f.seq), 0)
	comment.UpdatedAt = comment.CreatedAt
	f.comments[comment.ID] = &comment
	return &comment, nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return comment, nil
}

func (f *fakeCommentRepo) FindByPost(ctx context.Context, postID uuid.UUID) ([]*model.FullComment, error) {
	var flat []*model.FullComment
	for _, c := range f.comments {
		if c.PostID != postID {
			continue
		}
		author := f.profiles.profiles[c.AuthorID]
		flat = append(flat, &model.FullComment{
			Comment: *c,
			Author: model.Author{
				ID:          author.ID,
				DisplayName: author.DisplayName,
				Role:        author.Role,
			},
		})
	}
	// created_at ascending, like the SQL ORDER BY
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[j].Comment.CreatedAt.Before(flat[i].Comment.CreatedAt) {
				flat[i], flat[j] = flat[j], flat[i]
			}
		}
	}
	return flat, nil
}

func (f *fakeCommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	comment.Content = content
	comment.UpdatedAt = comment.UpdatedAt.Add(time.Minute)
	return comment, nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// mirror of the ON DELETE CASCADE foreign key
	doomed := map[uuid.UUID]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, c := range f.comments {
			if doomed[c.ID] || c.ParentID == nil || !doomed[*c.ParentID] {
				continue
			}
			doomed[c.ID] = true
			changed = true
		}
	}
	for cid := range doomed {
		delete(f.comments, cid)
	}
	return nil
}

type commentFixture struct {
	svc      Comment
	comments *fakeCommentRepo
	redis    *fakeRedis

	publishedPostID uuid.UUID
	draftPostID     uuid.UUID
	userID          uuid.UUID
	otherUserID     uuid.UUID
	adminID         uuid.UUID
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		publishedPostID: uuid.New(),
		draftPostID:     uuid.New(),
		userID:          uuid.New(),
		otherUserID:     uuid.New(),
		adminID:         uuid.New(),
	}

	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]*model.Profile{
		f.userID:      {ID: f.userID, DisplayName: strPtr("alice"), Role: model.RoleUser},
		f.otherUserID: {ID: f.otherUserID, DisplayName: strPtr("bob"), Role: model.RoleUser},
		f.adminID:     {ID: f.adminID, DisplayName: strPtr("root"), Role: model.RoleAdmin},
	}}

	posts := &fakePostRepo{posts: map[uuid.UUID]*model.FullPost{
		f.publishedPostID: {Post: model.Post{ID: f.publishedPostID, Status: model.PostStatusPublished}},
		f.draftPostID:     {Post: model.Post{ID: f.draftPostID, Status: model.PostStatusDraft}},
	}}

	f.comments = newFakeCommentRepo(profiles)
	f.redis = newFakeRedis()

	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:    posts,
			Comment: f.comments,
			Profile: profiles,
		},
		Redis: &redisrepo.RedisRepository{Default: f.redis},
	}

	f.svc = newCommentService(zap.NewNop(), repo)
	return f
}

func strPtr(s string) *string { return &s }

func TestCommentService_Create(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	comment, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{
		PostID:  f.publishedPostID,
		Content: "  Great write-up!  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Great write-up!", comment.Comment.Content)
	assert.Equal(t, f.userID, comment.Author.ID)
	assert.False(t, comment.Comment.IsEdited())
	assert.Contains(t, f.redis.dels, redisrepo.PostCommentsKey(f.publishedPostID.String()))
}

func TestCommentService_Create_Validation(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.publishedPostID, Content: "   \n\t  "})
	assert.ErrorIs(t, err, ErrCommentEmpty)

	_, err = f.svc.Create(ctx, f.userID, dto.CreateCommentDto{
		PostID:  f.publishedPostID,
		Content: strings.Repeat("ы", model.MaxCommentLength+1),
	})
	assert.ErrorIs(t, err, ErrCommentTooLong)

	// validation happens before any storage call
	assert.Zero(t, f.comments.createCalls)

	_, err = f.svc.Create(ctx, f.userID, dto.CreateCommentDto{
		PostID:  f.publishedPostID,
		Content: strings.Repeat("ы", model.MaxCommentLength),
	})
	assert.NoError(t, err)
}

func TestCommentService_Create_PostChecks(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: uuid.New(), Content: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.draftPostID, Content: "hi"})
	assert.ErrorIs(t, err, ErrPostNotPublished)
}

func TestCommentService_Create_ParentChecks(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	missing := uuid.New()
	_, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{
		PostID:   f.publishedPostID,
		ParentID: &missing,
		Content:  "hi",
	})
	assert.ErrorIs(t, err, ErrParentCommentNotFound)

	// a parent living on another post cannot be replied to
	stray, err := f.comments.Create(ctx, model.Comment{PostID: f.draftPostID, AuthorID: f.userID, Content: "elsewhere"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.userID, dto.CreateCommentDto{
		PostID:   f.publishedPostID,
		ParentID: &stray.ID,
		Content:  "hi",
	})
	assert.ErrorIs(t, err, ErrParentCommentNotFound)
}

func TestCommentService_Update_Permissions(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	comment, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.publishedPostID, Content: "original"})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, comment.Comment.ID, f.otherUserID, "hijacked")
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	// admins may delete but not rewrite someone else's comment
	_, err = f.svc.Update(ctx, comment.Comment.ID, f.adminID, "hijacked")
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	stored, err := f.comments.FindByID(ctx, comment.Comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Content)

	updated, err := f.svc.Update(ctx, comment.Comment.ID, f.userID, "fixed typo")
	require.NoError(t, err)
	assert.Equal(t, "fixed typo", updated.Comment.Content)
	assert.True(t, updated.Comment.IsEdited())
}

func TestCommentService_Update_NotFound(t *testing.T) {
	f := newCommentFixture()

	_, err := f.svc.Update(context.Background(), uuid.New(), f.userID, "anything")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_Delete_Permissions(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	comment, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.publishedPostID, Content: "delete me"})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, comment.Comment.ID, f.otherUserID, false)
	assert.ErrorIs(t, err, ErrCannotDeleteComment)

	err = f.svc.Delete(ctx, comment.Comment.ID, f.adminID, true)
	assert.NoError(t, err)

	_, err = f.comments.FindByID(ctx, comment.Comment.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCommentService_Delete_CascadesToReplies(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	root, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.publishedPostID, Content: "root"})
	require.NoError(t, err)

	reply, err := f.svc.Create(ctx, f.otherUserID, dto.CreateCommentDto{
		PostID:   f.publishedPostID,
		ParentID: &root.Comment.ID,
		Content:  "reply",
	})
	require.NoError(t, err)

	nested, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{
		PostID:   f.publishedPostID,
		ParentID: &reply.Comment.ID,
		Content:  "nested",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, root.Comment.ID, f.userID, false))

	for _, id := range []uuid.UUID{root.Comment.ID, reply.Comment.ID, nested.Comment.ID} {
		_, err := f.comments.FindByID(ctx, id)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	_, err := f.svc.ListByPost(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)

	c1, err := f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.publishedPostID, Content: "first"})
	require.NoError(t, err)
	c2, err := f.svc.Create(ctx, f.otherUserID, dto.CreateCommentDto{
		PostID:   f.publishedPostID,
		ParentID: &c1.Comment.ID,
		Content:  "a reply",
	})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.userID, dto.CreateCommentDto{PostID: f.publishedPostID, Content: "second"})
	require.NoError(t, err)

	tree, err := f.svc.ListByPost(ctx, f.publishedPostID)
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, "first", tree[0].Comment.Content)
	assert.Equal(t, "second", tree[1].Comment.Content)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, c2.Comment.ID, tree[0].Replies[0].Comment.ID)

	// the built tree lands in cache under the post key
	_, cached := f.redis.sets[redisrepo.PostCommentsKey(f.publishedPostID.String())]
	assert.True(t, cached)
}
