package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/profile"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *profile.Service
}

func NewProfileHandler(service *profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	{
		profiles.GET("/me", h.GetMyProfile)
		profiles.POST("/initialize", h.InitializeFirstUser)
		profiles.GET("/available-accounts", h.AvailableAccounts)
		profiles.GET("", h.ListProfiles)
		profiles.POST("", h.CreateProfile)
		profiles.PUT("/:id", h.UpdateProfile)
		profiles.DELETE("/:id", h.DeleteProfile)
		profiles.PUT("/:id/image", h.SetProfileImage)
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	result, err := h.service.GetMyProfile(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", result)
}

func (h *ProfileHandler) InitializeFirstUser(c *gin.Context) {
	result, err := h.service.InitializeFirstUser(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile initialized successfully", result)
}

func (h *ProfileHandler) AvailableAccounts(c *gin.Context) {
	emails, err := h.service.AvailableAccounts(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Available accounts retrieved successfully", emails)
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var req profile.ListProfilesRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.service.ListProfiles(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profiles retrieved successfully", result)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profile.CreateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateProfile(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Profile created successfully", result)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateProfile(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile deleted successfully", nil)
}

func (h *ProfileHandler) SetProfileImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req profile.SetImageRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.SetProfileImage(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile image updated successfully", result)
}
