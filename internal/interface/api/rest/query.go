package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Query-string helpers shared by the listing endpoints. Absent or malformed
// optional parameters read as nil, leaving the predicate inactive.

func queryFloat(c *gin.Context, key string) *float64 {
	if s := c.Query(key); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

func queryBool(c *gin.Context, key string) *bool {
	if s := c.Query(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return &b
		}
	}
	return nil
}

func queryTime(c *gin.Context, key string) *time.Time {
	if s := c.Query(key); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &t
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return &t
		}
	}
	return nil
}
