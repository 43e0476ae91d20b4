package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/service"
)

// ReviewHandler serves the reviews listing.
type ReviewHandler struct {
	reviews *service.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(reviews *service.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, log: log}
}

// RegisterRoutes binds review endpoints.
func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reviews", h.listReviews)
}

func (h *ReviewHandler) listReviews(ctx *gin.Context) {
	reviews, err := h.reviews.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching reviews", err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
