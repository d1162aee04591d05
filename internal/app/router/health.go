package router

import "github.com/gin-gonic/gin"

// Health handles the /healthz endpoint used for liveness checks.
// It responds to GET, HEAD and OPTIONS and prevents caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
