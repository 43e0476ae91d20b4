package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/service"
)

// AdminHandler serves admin profile lookups and the administration list.
type AdminHandler struct {
	admins *service.AdminService
	log    *zap.Logger
}

func NewAdminHandler(admins *service.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{admins: admins, log: log}
}

// RegisterRoutes binds admin endpoints.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/admins")
	group.GET("/:admin_id", h.getByID)
	group.GET("/email/:email", h.getByEmail)
	r.GET("/administration/admins", h.listAdministration)
}

func (h *AdminHandler) getByID(ctx *gin.Context) {
	admin, err := h.admins.GetByID(ctx.Request.Context(), ctx.Param("admin_id"))
	if err != nil {
		fail(ctx, h.log, "fetching admin", err)
		return
	}
	ctx.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) getByEmail(ctx *gin.Context) {
	admin, err := h.admins.GetByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		fail(ctx, h.log, "fetching admin", err)
		return
	}
	ctx.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) listAdministration(ctx *gin.Context) {
	admins, err := h.admins.ListAdministration(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.log, "listing admins", err)
		return
	}
	ctx.JSON(http.StatusOK, admins)
}
