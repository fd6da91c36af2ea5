package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets every configured response header. Headers with an
// empty value are left out.
func SecurityHeaders(headers map[string]string) gin.HandlerFunc {
	set := make(map[string]string, len(headers))
	for name, value := range headers {
		if value != "" {
			set[name] = value
		}
	}

	return func(c *gin.Context) {
		for name, value := range set {
			c.Header(name, value)
		}
		c.Next()
	}
}
