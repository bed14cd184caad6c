package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/response"
)

// Recovery converts panics into the uniform 500 envelope. The panic value is
// logged with the request path; the caller only ever sees the fixed message.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("request_id", c.GetString("request_id")),
				)
				response.InternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
