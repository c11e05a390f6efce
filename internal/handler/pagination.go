package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

func parsePagination(c *gin.Context) (page int, limit int, offset int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}

	return page, limit, (page - 1) * limit
}
