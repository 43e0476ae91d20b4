package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/handler"
	"spotnere-backend/internal/service"
	"spotnere-backend/internal/supabase"
)

// RegisterRoutes wires every handler onto the engine. Application endpoints
// live under /api, probes sit at the root.
func RegisterRoutes(r *gin.Engine, svcs *service.Registry, sb *supabase.Client, log *zap.Logger) {
	handler.NewHealthHandler(sb).RegisterRoutes(r)

	api := r.Group("/api")
	handler.NewAuthHandler(svcs.Auth, log).RegisterRoutes(api)
	handler.NewAdminHandler(svcs.Admins, log).RegisterRoutes(api)
	handler.NewPlaceHandler(svcs.Places, svcs.Vendors, svcs.Gallery, log).RegisterRoutes(api)
	handler.NewBookingHandler(svcs.Bookings, log).RegisterRoutes(api)
	handler.NewPayoutHandler(svcs.Payouts, log).RegisterRoutes(api)
	handler.NewCustomerHandler(svcs.Customers, log).RegisterRoutes(api)
	handler.NewReviewHandler(svcs.Reviews, log).RegisterRoutes(api)
}
