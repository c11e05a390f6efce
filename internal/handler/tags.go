package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) tagsList(c *gin.Context) {
	tags, err := h.services.Tag.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *Handler) tagsPosts(c *gin.Context) {
	page, limit, offset := parsePagination(c)

	posts, total, err := h.services.Post.ListByTag(c.Request.Context(), c.Param("slug"), limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) tagsCreate(c *gin.Context) {
	var input dto.CreateTagDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	tag, err := h.services.Tag.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) tagsUpdate(c *gin.Context) {
	tag, err := h.services.Tag.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	var input dto.UpdateTagDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := h.services.Tag.Update(c.Request.Context(), tag.ID, input); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) tagsDelete(c *gin.Context) {
	tag, err := h.services.Tag.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	if err := h.services.Tag.Delete(c.Request.Context(), tag.ID); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
