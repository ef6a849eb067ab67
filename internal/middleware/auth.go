package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const GrowerIDKey = "grower_id"

// ValidateUser is a stubbed authentication middleware that reads the grower ID from the X-User-ID header.
// Requests without a valid header continue anonymously.
func ValidateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.Next()
			return
		}

		growerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || growerID <= 0 {
			c.Next()
			return
		}

		c.Set(GrowerIDKey, growerID)
		c.Next()
	}
}

// GetGrowerID retrieves the grower ID from the context
func GetGrowerID(c *gin.Context) (int64, bool) {
	growerID, exists := c.Get(GrowerIDKey)
	if !exists {
		return 0, false
	}
	return growerID.(int64), true
}

// GrowerIDPtr returns the grower ID for optional columns, nil when anonymous
func GrowerIDPtr(c *gin.Context) *int64 {
	id, ok := GetGrowerID(c)
	if !ok {
		return nil
	}
	return &id
}
