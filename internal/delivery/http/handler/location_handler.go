package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/location"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	service *location.Service
}

func NewLocationHandler(service *location.Service) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	locations := router.Group("/locations")
	{
		locations.GET("", h.ListLocations)
		locations.POST("", h.CreateLocation)
		locations.GET("/:id", h.GetLocation)
		locations.PUT("/:id", h.UpdateLocation)
		locations.DELETE("/:id", h.DeleteLocation)
	}
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req location.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateLocation(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Location created successfully", result)
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetLocation(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", result)
}

// ListLocations filters by ?city= when present.
func (h *LocationHandler) ListLocations(c *gin.Context) {
	result, err := h.service.ListLocations(c.Request.Context(), middleware.GetCaller(c), c.Query("city"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", result)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req location.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateLocation(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", result)
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteLocation(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location deleted successfully", nil)
}
