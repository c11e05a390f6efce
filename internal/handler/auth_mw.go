package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

// resolveProfile authenticates the request without touching the handler
// chain; the middlewares decide what to do with the result.
func (h *Handler) resolveProfile(c *gin.Context) (*model.Profile, error) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, errNotAuthorized
	}

	claims, err := utils.DecodeJWT(token, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, errNotAuthorized
	}

	return h.getProfileFromClaims(c.Request.Context(), claims)
}

func (h *Handler) authMiddleware(c *gin.Context) {
	profile, err := h.resolveProfile(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	c.Set("profile", *profile)
	c.Next()
}
