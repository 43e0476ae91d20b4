package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/service"
)

// detail is the error envelope used across the API.
type detail struct {
	Detail string `json:"detail"`
}

// fail writes an error response. Service-level errors keep their message and
// map to their status; anything else becomes a 500 with the action prefixed.
func fail(ctx *gin.Context, log *zap.Logger, action string, err error) {
	var notFound *service.NotFoundError
	var invalid *service.ValidationError
	var unauthorized *service.UnauthorizedError
	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, detail{Detail: err.Error()})
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, detail{Detail: err.Error()})
	case errors.As(err, &unauthorized):
		ctx.JSON(http.StatusUnauthorized, detail{Detail: err.Error()})
	default:
		log.Error(action+" failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, detail{Detail: "Error " + action + ": " + err.Error()})
	}
}

func badRequest(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusBadRequest, detail{Detail: msg})
}
