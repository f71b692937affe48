package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessGate admits a request when X-Auth-Key matches the configured
// secret, or when X-Frontend-Source (trailing slash stripped) matches the
// one allowed frontend origin. Everything else gets a 403 echoing the
// offending source. This is an allow-list check on spoofable headers,
// not authentication.
func AccessGate(authKey, allowedFrontend string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			// A failure inside the check must never let the request
			// through.
			if r := recover(); r != nil {
				log.Error("panic in access gate",
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": fmt.Sprintf("Internal Server Error: %v", r),
				})
			}
		}()

		key := c.GetHeader("X-Auth-Key")
		source := strings.TrimRight(c.GetHeader("X-Frontend-Source"), "/")

		if key != "" && key == authKey {
			c.Next()
			return
		}

		if source == allowedFrontend {
			c.Next()
			return
		}

		log.Warn("request rejected",
			zap.String("source", source),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"detail": fmt.Sprintf("Forbidden: Invalid auth key or referer (%s)", source),
		})
	}
}
