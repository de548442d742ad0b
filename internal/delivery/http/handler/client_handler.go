package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/client"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	service *client.Service
}

func NewClientHandler(service *client.Service) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	clients := router.Group("/clients")
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
		clients.PUT("/:id/documents", h.AttachDocuments)
	}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req client.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateClient(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Client created successfully", result)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetClient(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client retrieved successfully", result)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	var req client.ListClientsRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.service.ListClients(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Clients retrieved successfully", result)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req client.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateClient(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", nil)
}

func (h *ClientHandler) AttachDocuments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req client.AttachDocumentsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.AttachDocuments(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client documents attached successfully", result)
}
