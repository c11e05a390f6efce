package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) categoriesList(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) categoriesPosts(c *gin.Context) {
	page, limit, offset := parsePagination(c)

	posts, total, err := h.services.Post.ListByCategory(c.Request.Context(), c.Param("slug"), limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) categoriesCreate(c *gin.Context) {
	var input dto.CreateCategoryDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	category, err := h.services.Category.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *Handler) categoriesUpdate(c *gin.Context) {
	category, err := h.services.Category.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	var input dto.UpdateCategoryDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := h.services.Category.Update(c.Request.Context(), category.ID, input); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) categoriesDelete(c *gin.Context) {
	category, err := h.services.Category.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	if err := h.services.Category.Delete(c.Request.Context(), category.ID); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
