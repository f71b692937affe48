package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is the GET / liveness endpoint.
func Root(port int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "running",
			"port":   port,
		})
	}
}
