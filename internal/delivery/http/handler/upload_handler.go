package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/upload"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *upload.Service
}

func NewUploadHandler(service *upload.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// RegisterPublicRoutes mounts the ticket redemption endpoint. The ticket in
// the path is the only credential.
func (h *UploadHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.PUT("/uploads/:ticket", h.Upload)
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/uploads", h.GenerateUploadURL)
	router.GET("/files/:id", h.Download)
}

func (h *UploadHandler) GenerateUploadURL(c *gin.Context) {
	result, err := h.service.GenerateUploadURL(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Upload URL generated successfully", result)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	result, err := h.service.Upload(c.Request.Context(), c.Param("ticket"), c.ContentType(), c.Request.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "File uploaded successfully", result)
}

func (h *UploadHandler) Download(c *gin.Context) {
	reader, info, err := h.service.Open(c.Request.Context(), middleware.GetCaller(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, reader, map[string]string{
		"Content-Disposition": `inline; filename="` + info.ID + `"`,
	})
}
