package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.services.Stats.Totals(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
