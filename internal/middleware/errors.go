package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"property-service/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a 500 response,
// unless the handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger.FromContext(c.Request.Context()).Error("request failed", logger.Err(err))
		if c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
	}
}

// Recovery converts panics into the same 500 shape.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		logger.FromContext(c.Request.Context()).Error("request panicked", logger.Err(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
	})
}
