package handler

import (
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) adminMiddleware(c *gin.Context) {
	profile, err := h.resolveProfile(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	if !profile.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errNotAdmin))
		return
	}

	c.Set("profile", *profile)
	c.Next()
}
