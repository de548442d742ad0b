package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/load"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoadHandler struct {
	service *load.Service
}

func NewLoadHandler(service *load.Service) *LoadHandler {
	return &LoadHandler{service: service}
}

func (h *LoadHandler) RegisterRoutes(router *gin.RouterGroup) {
	loads := router.Group("/loads")
	{
		loads.GET("", h.ListLoads)
		loads.POST("", h.CreateLoad)
		loads.GET("/all", h.ListAllLoads)
		loads.GET("/metrics", h.GetMetrics)
		loads.GET("/:id", h.GetLoad)
		loads.PUT("/:id", h.UpdateLoad)
		loads.DELETE("/:id", h.DeleteLoad)
		loads.PUT("/:id/invoice", h.ToggleInvoiceStatus)
	}
}

func (h *LoadHandler) CreateLoad(c *gin.Context) {
	var req load.LoadRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateLoad(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Load created successfully", result)
}

func (h *LoadHandler) GetLoad(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetLoad(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Load retrieved successfully", result)
}

func (h *LoadHandler) ListLoads(c *gin.Context) {
	var req load.ListLoadsRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.service.ListLoads(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", result)
}

func (h *LoadHandler) ListAllLoads(c *gin.Context) {
	result, err := h.service.ListAllLoads(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", result)
}

func (h *LoadHandler) UpdateLoad(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req load.LoadRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateLoad(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Load updated successfully", result)
}

func (h *LoadHandler) DeleteLoad(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteLoad(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Load deleted successfully", nil)
}

func (h *LoadHandler) ToggleInvoiceStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req load.ToggleInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	paidDate, err := h.service.ToggleInvoiceStatus(c.Request.Context(), middleware.GetCaller(c), id, req.IsPaid)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice status updated successfully", gin.H{
		"date_client_paid": paidDate,
	})
}

func (h *LoadHandler) GetMetrics(c *gin.Context) {
	result, err := h.service.GetMetrics(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Load metrics retrieved successfully", result)
}
