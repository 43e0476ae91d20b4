package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/service"
)

// PayoutHandler serves the per-place payout summary.
type PayoutHandler struct {
	payouts *service.PayoutService
	log     *zap.Logger
}

func NewPayoutHandler(payouts *service.PayoutService, log *zap.Logger) *PayoutHandler {
	return &PayoutHandler{payouts: payouts, log: log}
}

// RegisterRoutes binds payout endpoints.
func (h *PayoutHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/payouts", h.listPayouts)
}

func (h *PayoutHandler) listPayouts(ctx *gin.Context) {
	rows, err := h.payouts.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching payouts", err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
