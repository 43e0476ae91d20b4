package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler converts panics into a JSON 500 response.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("error", rec))
				ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
