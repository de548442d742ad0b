package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/account"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service *account.Service
}

func NewAccountHandler(service *account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterRoutes mounts the unauthenticated auth endpoints.
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
	}
}

func (h *AccountHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/revoke", h.RevokeToken)
		auth.POST("/change-password", h.ChangePassword)
	}
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	authResponse, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Account registered successfully", authResponse)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	authResponse, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", authResponse)
}

func (h *AccountHandler) RefreshToken(c *gin.Context) {
	var req account.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.RefreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token required")
		return
	}

	tokenPair, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", tokenPair)
}

func (h *AccountHandler) RevokeToken(c *gin.Context) {
	var req account.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.RefreshToken == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Refresh token required")
		return
	}

	caller := middleware.GetCaller(c)
	if err := h.service.RevokeToken(c.Request.Context(), caller.AccountID, req.RefreshToken); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token revoked successfully", nil)
}

func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req account.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.GetCaller(c)
	if err := h.service.ChangePassword(c.Request.Context(), caller.AccountID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
