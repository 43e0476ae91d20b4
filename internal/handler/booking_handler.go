package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/analytics"
	"spotnere-backend/internal/service"
)

// BookingHandler serves booking listings and the sales analytics feed.
type BookingHandler struct {
	bookings *service.BookingService
	log      *zap.Logger
}

func NewBookingHandler(bookings *service.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, log: log}
}

// RegisterRoutes binds booking endpoints.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/bookings")
	group.GET("", h.listBookings)
	group.GET("/sales-analytics", h.salesAnalytics)
	group.GET("/counts-by-user", h.countsByUser)
}

func (h *BookingHandler) listBookings(ctx *gin.Context) {
	bookings, err := h.bookings.List(ctx.Request.Context(), ctx.Query("place_id"))
	if err != nil {
		fail(ctx, h.log, "fetching bookings", err)
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) salesAnalytics(ctx *gin.Context) {
	period := analytics.ParsePeriod(ctx.Query("period"))
	buckets, err := h.bookings.SalesAnalytics(ctx.Request.Context(), period)
	if err != nil {
		fail(ctx, h.log, "fetching sales analytics", err)
		return
	}
	ctx.JSON(http.StatusOK, buckets)
}

func (h *BookingHandler) countsByUser(ctx *gin.Context) {
	counts, err := h.bookings.CountsByUser(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching booking counts", err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}
