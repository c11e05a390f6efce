package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/InkwellPress/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const commentTreeTTL = time.Minute * 10

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return "", ErrCommentEmpty
	}
	if utf8.RuneCountInString(content) > model.MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return content, nil
}

// ListByPost returns the comment forest for a post. The tree is rebuilt
// wholesale from the flat rows on every cache miss; mutations never patch
// it in place, they just drop the cache key.
func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.CommentNode, error) {
	cachedTree, err := redisrepo.GetMany[model.CommentNode](s.repo.Redis.Default, ctx, redisrepo.PostCommentsKey(postID.String()))
	if err == nil {
		return cachedTree, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%s) comments from redis: %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	if _, err := s.repo.Postgres.Post.FindByID(ctx, postID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	flat, err := s.repo.Postgres.Comment.FindByPost(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%s) comments from postgres: %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	tree, dropped := model.BuildCommentTree(flat)
	if dropped > 0 {
		// Data inconsistency, not a user error: surface in logs only.
		s.logger.Sugar().Warnf("dropped %d orphaned comment(s) while building tree for post(%s)", dropped, postID.String())
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostCommentsKey(postID.String()), tree, commentTreeTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) comments in redis: %s", postID.String(), err.Error())
	}

	return tree, nil
}

func (s *commentService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreateCommentDto) (*model.FullComment, error) {
	content, err := validateCommentContent(input.Content)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, input.PostID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", input.PostID.String(), err.Error())
		return nil, ErrInternal
	}
	if post.Post.Status != model.PostStatusPublished {
		return nil, ErrPostNotPublished
	}

	if input.ParentID != nil {
		parent, err := s.repo.Postgres.Comment.FindByID(ctx, *input.ParentID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, ErrParentCommentNotFound
			}

			s.logger.Sugar().Errorf("failed to find parent comment(%s) from postgres: %s", input.ParentID.String(), err.Error())
			return nil, ErrInternal
		}
		// No cross-post nesting.
		if parent.PostID != input.PostID {
			return nil, ErrParentCommentNotFound
		}
	}

	comment, err := s.repo.Postgres.Comment.Create(ctx, model.Comment{
		PostID:   input.PostID,
		AuthorID: authorID,
		ParentID: input.ParentID,
		Content:  content,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) comment: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidateTree(ctx, input.PostID)

	return s.withAuthor(ctx, comment)
}

func (s *commentService) Update(ctx context.Context, commentID uuid.UUID, requesterID uuid.UUID, content string) (*model.FullComment, error) {
	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to find comment(%s) from postgres: %s", commentID.String(), err.Error())
		return nil, ErrInternal
	}

	// Only the author may edit; admins can delete but not rewrite others' words.
	if !model.CanEditComment(requesterID, true, comment) {
		return nil, ErrNotCommentAuthor
	}

	updated, err := s.repo.Postgres.Comment.UpdateContent(ctx, commentID, content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to update comment(%s): %s", commentID.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidateTree(ctx, updated.PostID)

	return s.withAuthor(ctx, updated)
}

func (s *commentService) Delete(ctx context.Context, commentID uuid.UUID, requesterID uuid.UUID, requesterIsAdmin bool) error {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to find comment(%s) from postgres: %s", commentID.String(), err.Error())
		return ErrInternal
	}

	if !model.CanDeleteComment(requesterID, true, requesterIsAdmin, comment) {
		return ErrCannotDeleteComment
	}

	// Storage cascades the delete to the whole reply subtree.
	if err := s.repo.Postgres.Comment.Delete(ctx, commentID); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%s): %s", commentID.String(), err.Error())
		return ErrInternal
	}

	s.invalidateTree(ctx, comment.PostID)

	return nil
}

func (s *commentService) invalidateTree(ctx context.Context, postID uuid.UUID) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostCommentsKey(postID.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) comments from redis: %s", postID.String(), err.Error())
	}
}

func (s *commentService) withAuthor(ctx context.Context, comment *model.Comment) (*model.FullComment, error) {
	author, err := s.repo.Postgres.Profile.FindByID(ctx, comment.AuthorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comment author(%s) from postgres: %s", comment.AuthorID.String(), err.Error())
		return nil, ErrInternal
	}

	return &model.FullComment{
		Comment: *comment,
		Author: model.Author{
			ID:          author.ID,
			DisplayName: author.DisplayName,
			AvatarURL:   author.AvatarURL,
			Role:        author.Role,
		},
	}, nil
}
