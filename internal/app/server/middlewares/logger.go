package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"oms/api/internal/app/pkg/logger"
)

// Logger 访问日志中间件
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.Infof(c.Request.Context(), "%s %s status=%d latency=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
