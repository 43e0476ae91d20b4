package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/service"
)

// CustomerHandler serves the users table surface: the customer list, the
// head count, and the segment distribution for the dashboard pie chart.
type CustomerHandler struct {
	customers *service.CustomerService
	log       *zap.Logger
}

func NewCustomerHandler(customers *service.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, log: log}
}

// RegisterRoutes binds customer endpoints.
func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/customers", h.listCustomers)
	users := r.Group("/users")
	users.GET("/count", h.usersCount)
	users.GET("/customer-distribution", h.customerDistribution)
}

func (h *CustomerHandler) listCustomers(ctx *gin.Context) {
	customers, err := h.customers.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching customers", err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) usersCount(ctx *gin.Context) {
	count, err := h.customers.Count(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching users count", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CustomerHandler) customerDistribution(ctx *gin.Context) {
	segments, err := h.customers.Distribution(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "fetching customer distribution", err)
		return
	}
	ctx.JSON(http.StatusOK, segments)
}
