package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) commentsGet(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	tree, err := h.services.Comment.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}

func (h *Handler) commentsCreate(c *gin.Context) {
	var input dto.CreateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	profile := h.getProfileFromRequest(c)

	comment, err := h.services.Comment.Create(c.Request.Context(), profile.ID, input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) commentsUpdate(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	var input dto.UpdateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	profile := h.getProfileFromRequest(c)

	comment, err := h.services.Comment.Update(c.Request.Context(), commentID, profile.ID, input.Content)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	profile := h.getProfileFromRequest(c)

	if err := h.services.Comment.Delete(c.Request.Context(), commentID, profile.ID, profile.IsAdmin()); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
