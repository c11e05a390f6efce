package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type postListResponse struct {
	Posts      []*model.PostListItem `json:"posts"`
	Pagination dto.Pagination        `json:"pagination"`
}

func (h *Handler) postsList(c *gin.Context) {
	page, limit, offset := parsePagination(c)

	posts, total, err := h.services.Post.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) postsFeatured(c *gin.Context) {
	_, limit, _ := parsePagination(c)

	posts, err := h.services.Post.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, postListResponse{
			Posts:      []*model.PostListItem{},
			Pagination: dto.NewPagination(1, defaultPageSize, 0),
		})
		return
	}

	page, limit, offset := parsePagination(c)

	posts, total, err := h.services.Post.Search(c.Request.Context(), query, limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) postsGetBySlug(c *gin.Context) {
	post, err := h.services.Post.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	post, err := h.services.Post.GetByID(c.Request.Context(), postID, h.getProfileFromRequest(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsGetMy(c *gin.Context) {
	profile := h.getProfileFromRequest(c)
	page, limit, offset := parsePagination(c)

	posts, total, err := h.services.Post.ListByAuthor(c.Request.Context(), profile.ID, profile, limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) authorsPosts(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	page, limit, offset := parsePagination(c)

	posts, total, err := h.services.Post.ListByAuthor(c.Request.Context(), authorID, h.getProfileFromRequest(c), limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) postsCreate(c *gin.Context) {
	profile := h.getProfileFromRequest(c)
	if !profile.CanPublish() {
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(service.ErrAccessDenied))
		return
	}

	var input dto.CreatePostDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), profile.ID, input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *Handler) postsEdit(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	var input dto.EditPostDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := h.services.Post.Edit(c.Request.Context(), postID, h.getProfileFromRequest(c), input); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) postsUpdateStatus(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	var input dto.UpdatePostStatusDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := h.services.Post.UpdateStatus(c.Request.Context(), postID, h.getProfileFromRequest(c), input.Status); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), postID, h.getProfileFromRequest(c)); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) postsLike(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	profile := h.getProfileFromRequest(c)

	liked, err := h.services.Post.ToggleLike(c.Request.Context(), postID, profile.ID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *Handler) postsIsLiked(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	profile := h.getProfileFromRequest(c)

	c.JSON(http.StatusOK, gin.H{"liked": h.services.Post.IsLiked(c.Request.Context(), postID, profile.ID)})
}

func (h *Handler) postsLikeCount(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	count, err := h.services.Post.LikeCount(c.Request.Context(), postID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": count})
}

func (h *Handler) postsUploadImage(c *gin.Context) {
	profile := h.getProfileFromRequest(c)
	if !profile.CanPublish() {
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(service.ErrAccessDenied))
		return
	}

	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errNoFile))
		return
	}
	defer file.Close()

	url, err := h.services.Image.Upload(c.Request.Context(), file, fileHeader)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
