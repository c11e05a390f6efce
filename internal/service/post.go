package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/InkwellPress/blog-service/internal/repository/redisrepo"
	"github.com/InkwellPress/blog-service/pkg/markdown"
	"github.com/InkwellPress/blog-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	postCacheTTL     = time.Hour
	postListCacheTTL = time.Minute * 5
	wordsPerMinute   = 200
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func readingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / wordsPerMinute
	if minutes == 0 {
		minutes = 1
	}
	return minutes
}

// uniqueSlug derives a slug from the title, suffixing a counter on collision.
func (s *postService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "post"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.repo.Postgres.Post.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostDto) (*model.Post, error) {
	slug, err := s.uniqueSlug(ctx, input.Title)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate slug for post %q: %s", input.Title, err.Error())
		return nil, ErrInternal
	}

	rt := readingTime(input.Content)
	post := model.Post{
		AuthorID:      authorID,
		Title:         input.Title,
		Slug:          slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		Status:        model.PostStatusDraft,
		IsFeatured:    input.IsFeatured,
		ReadingTime:   &rt,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post, input.CategoryID, input.TagIDs)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidateLists(ctx)

	return createdPost, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	cachedPost, err := redisrepo.Get[model.FullPost](s.repo.Redis.Default, ctx, redisrepo.PostKey(slug))
	if err == nil {
		if cachedPost == nil {
			return nil, ErrPostNotFound
		}
		s.incrViews(cachedPost.Post.ID)
		return cachedPost, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%s) from redis: %s", slug, err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Postgres.Post.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	post.ContentHTML = markdown.Render(post.Post.Content)

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(slug), post, postCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) in redis: %s", slug, err.Error())
	}

	s.incrViews(post.Post.ID)

	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID, requester *model.Profile) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	// Unpublished posts are visible only to their author and admins.
	if post.Post.Status != model.PostStatusPublished {
		if requester == nil || (requester.ID != post.Post.AuthorID && !requester.IsAdmin()) {
			return nil, ErrPostNotFound
		}
	}

	post.ContentHTML = markdown.Render(post.Post.Content)

	return post, nil
}

func (s *postService) incrViews(postID uuid.UUID) {
	go func(id uuid.UUID) {
		ctx := context.Background()
		if err := s.repo.Postgres.Post.IncrViews(ctx, id); err != nil {
			s.logger.Sugar().Errorf("failed to increment views for post(%s): %s", id.String(), err.Error())
		}
	}(postID)
}

type cachedPostList struct {
	Posts []*model.PostListItem `json:"posts"`
	Total int64                 `json:"total"`
}

func (s *postService) List(ctx context.Context, limit int, offset int) ([]*model.PostListItem, int64, error) {
	cached, err := redisrepo.Get[cachedPostList](s.repo.Redis.Default, ctx, redisrepo.PostListKey(limit, offset))
	if err == nil && cached != nil {
		return cached.Posts, cached.Total, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post list from redis: %s", err.Error())
		return nil, 0, ErrInternal
	}

	posts, total, err := s.repo.Postgres.Post.FindPublished(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find published posts from postgres: %s", err.Error())
		return nil, 0, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostListKey(limit, offset), cachedPostList{Posts: posts, Total: total}, postListCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post list in redis: %s", err.Error())
	}

	return posts, total, nil
}

func (s *postService) ListByCategory(ctx context.Context, categorySlug string, limit int, offset int) ([]*model.PostListItem, int64, error) {
	if _, err := s.repo.Postgres.Category.FindBySlug(ctx, categorySlug); err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, ErrCategoryNotFound
		}

		s.logger.Sugar().Errorf("failed to find category(%s) from postgres: %s", categorySlug, err.Error())
		return nil, 0, ErrInternal
	}

	posts, total, err := s.repo.Postgres.Post.FindPublishedByCategory(ctx, categorySlug, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts by category(%s) from postgres: %s", categorySlug, err.Error())
		return nil, 0, ErrInternal
	}

	return posts, total, nil
}

func (s *postService) ListByTag(ctx context.Context, tagSlug string, limit int, offset int) ([]*model.PostListItem, int64, error) {
	if _, err := s.repo.Postgres.Tag.FindBySlug(ctx, tagSlug); err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, ErrTagNotFound
		}

		s.logger.Sugar().Errorf("failed to find tag(%s) from postgres: %s", tagSlug, err.Error())
		return nil, 0, ErrInternal
	}

	posts, total, err := s.repo.Postgres.Post.FindPublishedByTag(ctx, tagSlug, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts by tag(%s) from postgres: %s", tagSlug, err.Error())
		return nil, 0, ErrInternal
	}

	return posts, total, nil
}

func (s *postService) ListFeatured(ctx context.Context, limit int) ([]*model.PostListItem, error) {
	cachedPosts, err := redisrepo.GetMany[model.PostListItem](s.repo.Redis.Default, ctx, redisrepo.FeaturedKey(limit))
	if err == nil {
		return cachedPosts, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get featured posts from redis: %s", err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindFeatured(ctx, limit)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find featured posts from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.FeaturedKey(limit), posts, postListCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set featured posts in redis: %s", err.Error())
	}

	return posts, nil
}

func (s *postService) Search(ctx context.Context, query string, limit int, offset int) ([]*model.PostListItem, int64, error) {
	posts, total, err := s.repo.Postgres.Post.SearchPublishedByTitle(ctx, query, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search posts by title(%q) from postgres: %s", query, err.Error())
		return nil, 0, ErrInternal
	}

	return posts, total, nil
}

// ListByAuthor hides unpublished posts (and their count) from everyone but
// the author and admins; the filter lives in SQL so pagination stays exact.
func (s *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID, requester *model.Profile, limit int, offset int) ([]*model.PostListItem, int64, error) {
	find := s.repo.Postgres.Post.FindPublishedByAuthor
	if requester != nil && (requester.ID == authorID || requester.IsAdmin()) {
		find = s.repo.Postgres.Post.FindByAuthor
	}

	posts, total, err := find(ctx, authorID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", authorID.String(), err.Error())
		return nil, 0, ErrInternal
	}

	return posts, total, nil
}

func (s *postService) findForMutation(ctx context.Context, postID uuid.UUID, requester *model.Profile) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	if requester.ID != post.Post.AuthorID && !requester.IsAdmin() {
		return nil, ErrAccessDenied
	}

	return post, nil
}

func (s *postService) Edit(ctx context.Context, postID uuid.UUID, requester *model.Profile, input dto.EditPostDto) error {
	post, err := s.findForMutation(ctx, postID, requester)
	if err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.Content != nil {
		updates["content"] = *input.Content
		updates["reading_time"] = readingTime(*input.Content)
	}
	if input.FeaturedImage != nil {
		updates["featured_image"] = *input.FeaturedImage
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}

	if len(updates) == 0 && input.CategoryID == nil && input.TagIDs == nil {
		return ErrNothingToUpdate
	}

	if len(updates) > 0 {
		if err := s.repo.Postgres.Post.Update(ctx, postID, updates); err != nil {
			s.logger.Sugar().Errorf("failed to update post(%s): %s", postID.String(), err.Error())
			return ErrInternal
		}
	}

	if input.CategoryID != nil {
		if err := s.repo.Postgres.Post.SetCategory(ctx, postID, input.CategoryID); err != nil {
			s.logger.Sugar().Errorf("failed to set post(%s) category: %s", postID.String(), err.Error())
			return ErrInternal
		}
	}

	if input.TagIDs != nil {
		if err := s.repo.Postgres.Post.SetTags(ctx, postID, input.TagIDs); err != nil {
			s.logger.Sugar().Errorf("failed to set post(%s) tags: %s", postID.String(), err.Error())
			return ErrInternal
		}
	}

	s.invalidatePost(ctx, post.Post.Slug)
	s.invalidateLists(ctx)

	return nil
}

func (s *postService) UpdateStatus(ctx context.Context, postID uuid.UUID, requester *model.Profile, status string) error {
	post, err := s.findForMutation(ctx, postID, requester)
	if err != nil {
		return err
	}

	var publishedAt *time.Time
	if status == model.PostStatusPublished && post.Post.PublishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}

	if err := s.repo.Postgres.Post.UpdateStatus(ctx, postID, status, publishedAt); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%s) status: %s", postID.String(), err.Error())
		return ErrInternal
	}

	s.invalidatePost(ctx, post.Post.Slug)
	s.invalidateLists(ctx)

	return nil
}

func (s *postService) Delete(ctx context.Context, postID uuid.UUID, requester *model.Profile) error {
	post, err := s.findForMutation(ctx, postID, requester)
	if err != nil {
		return err
	}

	if err := s.repo.Postgres.Post.Delete(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", postID.String(), err.Error())
		return ErrInternal
	}

	s.invalidatePost(ctx, post.Post.Slug)
	s.invalidateLists(ctx)
	// Comments went with the post; drop their tree too.
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostCommentsKey(postID.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) comments from redis: %s", postID.String(), err.Error())
	}

	return nil
}

func (s *postService) ToggleLike(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (bool, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", postID.String(), err.Error())
		return false, ErrInternal
	}
	if post.Post.Status != model.PostStatusPublished {
		return false, ErrPostNotPublished
	}

	liked, err := s.repo.Postgres.Like.Exists(ctx, postID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check like on post(%s) from postgres: %s", postID.String(), err.Error())
		return false, ErrInternal
	}

	if liked {
		if err := s.repo.Postgres.Like.Delete(ctx, postID, userID); err != nil {
			s.logger.Sugar().Errorf("failed to unlike post(%s): %s", postID.String(), err.Error())
			return false, ErrInternal
		}
		return false, nil
	}

	if err := s.repo.Postgres.Like.Create(ctx, postID, userID); err != nil {
		s.logger.Sugar().Errorf("failed to like post(%s): %s", postID.String(), err.Error())
		return false, ErrInternal
	}
	return true, nil
}

func (s *postService) IsLiked(ctx context.Context, postID uuid.UUID, userID uuid.UUID) bool {
	liked, err := s.repo.Postgres.Like.Exists(ctx, postID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check like on post(%s) from postgres: %s", postID.String(), err.Error())
		return false
	}
	return liked
}

func (s *postService) LikeCount(ctx context.Context, postID uuid.UUID) (int64, error) {
	count, err := s.repo.Postgres.Like.CountByPost(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count likes on post(%s) from postgres: %s", postID.String(), err.Error())
		return 0, ErrInternal
	}
	return count, nil
}

func (s *postService) invalidatePost(ctx context.Context, slug string) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(slug)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) from redis: %s", slug, err.Error())
	}
}

func (s *postService) invalidateLists(ctx context.Context) {
	keys, err := s.repo.Redis.Default.Keys(ctx, "posts:*").Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to list post list keys in redis: %s", err.Error())
		return
	}
	featured, err := s.repo.Redis.Default.Keys(ctx, "posts-featured:*").Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to list featured post keys in redis: %s", err.Error())
		return
	}
	keys = append(keys, featured...)
	if len(keys) == 0 {
		return
	}
	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post list keys from redis: %s", err.Error())
	}
}
