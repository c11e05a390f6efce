package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) profileGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.getProfileFromRequest(c))
}

func (h *Handler) profileUpdate(c *gin.Context) {
	var input dto.UpdateProfileDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	profile := h.getProfileFromRequest(c)

	if err := h.services.Profile.Update(c.Request.Context(), profile.ID, input); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

type authorListResponse struct {
	Authors    []*model.Profile `json:"authors"`
	Pagination dto.Pagination   `json:"pagination"`
}

func (h *Handler) adminAuthorsList(c *gin.Context) {
	page, limit, offset := parsePagination(c)

	authors, total, err := h.services.Profile.ListAuthors(c.Request.Context(), limit, offset)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, authorListResponse{
		Authors:    authors,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *Handler) adminAuthorsCreate(c *gin.Context) {
	var input dto.CreateAuthorDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	author, err := h.services.Profile.CreateAuthor(c.Request.Context(), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, author)
}

func (h *Handler) adminAuthorsUpdateRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	var input dto.UpdateAuthorRoleDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := h.services.Profile.UpdateRole(c.Request.Context(), userID, input.Role); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
