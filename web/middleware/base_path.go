package middleware

import "github.com/gin-gonic/gin"

// BasePath stores the configured base path in the request context so
// handlers can build redirects without knowing the mount point.
func BasePath(basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_path", basePath)
		c.Next()
	}
}
