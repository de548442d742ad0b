package handler

import (
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/task"
	"freight-tms/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *task.Service
}

func NewTaskHandler(service *task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("/mine", h.GetMyTasks)
		tasks.GET("/assigned", h.GetAssignedTasks)
		tasks.GET("/metrics", h.GetTaskMetrics)
		tasks.PUT("/:id/status", h.UpdateTaskStatus)
		tasks.PUT("/:id/read", h.MarkTaskRead)
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req task.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateTask(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Task created successfully", result)
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req task.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateTaskStatus(c.Request.Context(), middleware.GetCaller(c), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task status updated successfully", result)
}

func (h *TaskHandler) MarkTaskRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.MarkTaskRead(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task marked as read", nil)
}

func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	var req task.ListTasksRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.service.GetMyTasks(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tasks retrieved successfully", result)
}

func (h *TaskHandler) GetAssignedTasks(c *gin.Context) {
	var req task.ListTasksRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.service.GetAssignedTasks(c.Request.Context(), middleware.GetCaller(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tasks retrieved successfully", result)
}

func (h *TaskHandler) GetTaskMetrics(c *gin.Context) {
	result, err := h.service.GetTaskMetrics(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task metrics retrieved successfully", result)
}
