package handler

import (
	"errors"
	"net/http"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("not authorized")
	errNotAdmin      = errors.New("access denied")
	errInvalidID     = errors.New("invalid id")
	errNoFile        = errors.New("no file provided")
)

func statusFromServiceError(err error) int {
	switch {
	case service.IsValidationError(err):
		return http.StatusBadRequest
	case service.IsPermissionError(err):
		return http.StatusForbidden
	case service.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) serviceError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFromServiceError(err), dto.NewErrorResponse(err))
}
