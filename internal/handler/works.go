package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) worksList(c *gin.Context) {
	works, err := h.services.Work.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

func (h *Handler) worksGetBySlug(c *gin.Context) {
	work, err := h.services.Work.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

func (h *Handler) worksCreate(c *gin.Context) {
	var input dto.CreateWorkDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	work, err := h.services.Work.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

func (h *Handler) worksUpdate(c *gin.Context) {
	work, err := h.services.Work.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	var input dto.UpdateWorkDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := h.services.Work.Update(c.Request.Context(), work.ID, input); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) worksDelete(c *gin.Context) {
	work, err := h.services.Work.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	if err := h.services.Work.Delete(c.Request.Context(), work.ID); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
