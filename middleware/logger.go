package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger attaches the service logger to each request context so
// handlers can retrieve it.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("logger", logger)
		c.Next()
	}
}
