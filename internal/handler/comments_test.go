package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommentService struct {
	tree []*model.CommentNode
	err  error
}

func (s *stubCommentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.CommentNode, error) {
	return s.tree, s.err
}

func (s *stubCommentService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreateCommentDto) (*model.FullComment, error) {
	return nil, s.err
}

func (s *stubCommentService) Update(ctx context.Context, commentID uuid.UUID, requesterID uuid.UUID, content string) (*model.FullComment, error) {
	return nil, s.err
}

func (s *stubCommentService) Delete(ctx context.Context, commentID uuid.UUID, requesterID uuid.UUID, requesterIsAdmin bool) error {
	return s.err
}

func newCommentsRouter(stub *stubCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&service.Service{Comment: stub})

	r := gin.New()
	r.GET("/posts/:postID/comments", h.commentsGet)
	return r
}

func TestCommentsGet(t *testing.T) {
	node := &model.CommentNode{Replies: []*model.CommentNode{}}
	node.Comment.ID = uuid.New()
	node.Comment.Content = "hello"

	r := newCommentsRouter(&stubCommentService{tree: []*model.CommentNode{node}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/"+uuid.NewString()+"/comments", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")
}

func TestCommentsGet_InvalidID(t *testing.T) {
	r := newCommentsRouter(&stubCommentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/not-a-uuid/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentsGet_ServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", service.ErrCommentEmpty, http.StatusBadRequest},
		{"permission", service.ErrNotCommentAuthor, http.StatusForbidden},
		{"not found", service.ErrPostNotFound, http.StatusNotFound},
		{"internal", service.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newCommentsRouter(&stubCommentService{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/posts/"+uuid.NewString()+"/comments", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}
