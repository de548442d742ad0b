package handler

import (
	"context"
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/access"
	"freight-tms/internal/usecase/carrier"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarrierHandler struct {
	service *carrier.Service
}

func NewCarrierHandler(service *carrier.Service) *CarrierHandler {
	return &CarrierHandler{service: service}
}

func (h *CarrierHandler) RegisterRoutes(router *gin.RouterGroup) {
	carriers := router.Group("/carriers")
	{
		carriers.GET("", h.ListCarriers)
		carriers.POST("", h.CreateCarrier)
		carriers.GET("/:id", h.GetCarrier)
		carriers.PUT("/:id", h.UpdateCarrier)
		carriers.DELETE("/:id", h.DeleteCarrier)
		carriers.PUT("/:id/w9", h.AttachW9)
		carriers.PUT("/:id/documents", h.AttachSupportingDocs)
	}
}

func (h *CarrierHandler) CreateCarrier(c *gin.Context) {
	var req carrier.CarrierRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateCarrier(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Carrier created successfully", result)
}

func (h *CarrierHandler) GetCarrier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetCarrier(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Carrier retrieved successfully", result)
}

func (h *CarrierHandler) ListCarriers(c *gin.Context) {
	var req carrier.ListCarriersRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.service.ListCarriers(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Carriers retrieved successfully", result)
}

func (h *CarrierHandler) UpdateCarrier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req carrier.CarrierRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateCarrier(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Carrier updated successfully", result)
}

func (h *CarrierHandler) DeleteCarrier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCarrier(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Carrier deleted successfully", nil)
}

func (h *CarrierHandler) AttachW9(c *gin.Context) {
	h.attach(c, "W9 attached successfully", h.service.AttachW9)
}

func (h *CarrierHandler) AttachSupportingDocs(c *gin.Context) {
	h.attach(c, "Supporting documents attached successfully", h.service.AttachSupportingDocs)
}

type attachFunc func(ctx context.Context, caller access.Caller, id uuid.UUID, req *carrier.AttachFileRequest) (*carrier.CarrierResponse, error)

func (h *CarrierHandler) attach(c *gin.Context, message string, fn attachFunc) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req carrier.AttachFileRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := fn(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}
