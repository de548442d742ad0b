package postgres

import (
	"context"
	"errors"
	"fmt"
	domainProfile "freight-tms/internal/domain/profile"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) domainProfile.Repository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domainProfile.Profile) error {
	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toProfileModel(p)).Error; err != nil {
		if isDuplicateKey(err) {
			return domainProfile.ErrProfileExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*domainProfile.Profile, error) {
	return r.getOne(ctx, "id = ?", profileID)
}

func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domainProfile.Profile, error) {
	return r.getOne(ctx, "account_id = ?", accountID)
}

func (r *ProfileRepository) getOne(ctx context.Context, query string, arg interface{}) (*domainProfile.Profile, error) {
	var m models.ProfileModel
	err := r.db.DB.WithContext(ctx).Where(query, arg).First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainProfile.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return toProfileEntity(&m), nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *domainProfile.Profile) error {
	p.UpdatedAt = time.Now().UTC()
	m := toProfileModel(p)

	result := r.db.DB.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":             m.Name,
			"email":            m.Email,
			"phone":            m.Phone,
			"manager":          m.Manager,
			"role":             m.Role,
			"status":           m.Status,
			"commission_rate":  m.CommissionRate,
			"salary":           m.Salary,
			"load_id":          m.LoadID,
			"image_storage_id": m.ImageStorageID,
			"image_url":        m.ImageURL,
			"updated_at":       m.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainProfile.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ProfileModel{}, "id = ?", profileID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainProfile.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) List(ctx context.Context, filter *domainProfile.Filter) ([]*domainProfile.Profile, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.ProfileModel{})

	if filter != nil {
		if filter.Role != nil {
			db = db.Where("role = ?", string(*filter.Role))
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		if filter.Search != "" {
			search := "%" + filter.Search + "%"
			db = db.Where("name ILIKE ? OR email ILIKE ? OR load_id ILIKE ?", search, search, search)
		}
	}

	var rows []models.ProfileModel
	if err := db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*domainProfile.Profile, len(rows))
	for i := range rows {
		profiles[i] = toProfileEntity(&rows[i])
	}
	return profiles, nil
}

func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&models.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

func toProfileModel(p *domainProfile.Profile) *models.ProfileModel {
	var manager *string
	if p.Manager != nil {
		v := string(*p.Manager)
		manager = &v
	}
	return &models.ProfileModel{
		ID:             p.ID,
		AccountID:      p.AccountID,
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Manager:        manager,
		Role:           string(p.Role),
		Status:         string(p.Status),
		CommissionRate: p.CommissionRate,
		Salary:         p.Salary,
		LoadID:         p.LoadID,
		ImageStorageID: p.ImageStorageID,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProfileEntity(m *models.ProfileModel) *domainProfile.Profile {
	var manager *domainProfile.Manager
	if m.Manager != nil {
		v := domainProfile.Manager(*m.Manager)
		manager = &v
	}
	return &domainProfile.Profile{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Manager:        manager,
		Role:           domainProfile.Role(m.Role),
		Status:         domainProfile.Status(m.Status),
		CommissionRate: m.CommissionRate,
		Salary:         m.Salary,
		LoadID:         m.LoadID,
		ImageStorageID: m.ImageStorageID,
		ImageURL:       m.ImageURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
