package postgres

import (
	"context"
	"errors"
	"fmt"
	domainTask "freight-tms/internal/domain/task"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) domainTask.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domainTask.Task) error {
	now := time.Now().UTC()
	t.ID = uuid.New()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toTaskModel(t)).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainTask.Task, error) {
	var m models.TaskModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainTask.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return toTaskEntity(&m), nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domainTask.Status, completionTime *time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          string(status),
			"completion_time": completionTime,
			"updated_at":      time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update task status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainTask.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, filter *domainTask.Filter) ([]*domainTask.Task, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.TaskModel{})

	if filter != nil {
		if filter.AssigneeID != nil {
			db = db.Where("assignee_id = ?", *filter.AssigneeID)
		}
		if filter.AssignerID != nil {
			db = db.Where("assigner_id = ?", *filter.AssignerID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
	}

	var rows []models.TaskModel
	if err := db.Order("start_time DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domainTask.Task, len(rows))
	for i := range rows {
		tasks[i] = toTaskEntity(&rows[i])
	}
	return tasks, nil
}

func (r *TaskRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark task read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainTask.ErrTaskNotFound
	}
	return nil
}

func toTaskModel(t *domainTask.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		AssignerID:     t.AssignerID,
		AssigneeID:     t.AssigneeID,
		DueDate:        t.DueDate,
		StartTime:      t.StartTime,
		CompletionTime: t.CompletionTime,
		IsRead:         t.IsRead,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTaskEntity(m *models.TaskModel) *domainTask.Task {
	return &domainTask.Task{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Priority:       domainTask.Priority(m.Priority),
		Status:         domainTask.Status(m.Status),
		AssignerID:     m.AssignerID,
		AssigneeID:     m.AssigneeID,
		DueDate:        m.DueDate,
		StartTime:      m.StartTime,
		CompletionTime: m.CompletionTime,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
