// Package handler provides transport-agnostic HTTP handlers.
package handler

import "github.com/gin-gonic/gin"

// Health answers liveness probes. GET/HEAD/OPTIONS all return 2xx.
func Health(c *gin.Context) {
	// Never cache the probe result
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
