package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// CurrentUserID reads the caller identity set by the gateway. Empty when the
// request carries no identity.
func CurrentUserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-User-ID"))
}

// RequireUserID aborts with 400 when the caller identity header is missing.
func RequireUserID(c *gin.Context) string {
	userID := CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing X-User-ID header",
		})
	}
	return userID
}

// ParsePagination reads limit/offset query params with sane bounds.
func ParsePagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
