package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spotnere-backend/internal/dto"
	"spotnere-backend/internal/service"
)

// AuthHandler serves admin login and signup.
type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// RegisterRoutes binds auth endpoints.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	group.POST("/login", h.login)
	group.POST("/signup", h.signup)
}

func (h *AuthHandler) login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid payload: "+err.Error())
		return
	}
	resp, err := h.auth.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(ctx, h.log, "during login", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid payload: "+err.Error())
		return
	}
	resp, err := h.auth.Signup(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, h.log, "during signup", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
