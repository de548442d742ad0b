package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/bol"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BOLHandler struct {
	service *bol.Service
}

func NewBOLHandler(service *bol.Service) *BOLHandler {
	return &BOLHandler{service: service}
}

func (h *BOLHandler) RegisterRoutes(router *gin.RouterGroup) {
	bols := router.Group("/bols")
	{
		bols.GET("", h.ListBOLs)
		bols.POST("", h.CreateBOL)
		bols.GET("/:id", h.GetBOL)
		bols.PUT("/:id", h.UpdateBOL)
		bols.DELETE("/:id", h.DeleteBOL)
	}
}

func (h *BOLHandler) CreateBOL(c *gin.Context) {
	var req bol.BOLRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateBOL(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Bill of lading created successfully", result)
}

func (h *BOLHandler) GetBOL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetBOL(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bill of lading retrieved successfully", result)
}

func (h *BOLHandler) ListBOLs(c *gin.Context) {
	result, err := h.service.ListBOLs(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bills of lading retrieved successfully", result)
}

func (h *BOLHandler) UpdateBOL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req bol.BOLRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateBOL(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bill of lading updated successfully", result)
}

func (h *BOLHandler) DeleteBOL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBOL(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bill of lading deleted successfully", nil)
}
