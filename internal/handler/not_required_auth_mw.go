package handler

import (
	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware resolves the profile when a valid token is
// present and silently continues as anonymous otherwise.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	if profile, err := h.resolveProfile(c); err == nil {
		c.Set("profile", *profile)
	}

	c.Next()
}
