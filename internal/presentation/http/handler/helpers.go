package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/pagination"
)

// GetUserID extracts the user id from the Gin context, 0 when absent
func GetUserID(c *gin.Context) int {
	v, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	id, ok := v.(int)
	if !ok {
		return 0
	}
	return id
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	v, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return v.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	v, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return v.(string)
}

// pathID parses a numeric :id path parameter
func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperror.NewBadRequestError("Invalid id")
	}
	return id, nil
}

// parseDate parses an ISO yyyy-mm-dd date string
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperror.NewBadRequestError("Dates must be in YYYY-MM-DD format")
	}
	return t, nil
}

// pageParams reads page/per_page query parameters
func pageParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}
}

// includeInactive reads the include_inactive query flag
func includeInactive(c *gin.Context) bool {
	return c.Query("include_inactive") == "true"
}
