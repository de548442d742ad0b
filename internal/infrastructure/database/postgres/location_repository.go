package postgres

import (
	"context"
	"errors"
	"fmt"
	domainLocation "freight-tms/internal/domain/location"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository struct {
	db *DB
}

func NewLocationRepository(db *DB) domainLocation.Repository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *domainLocation.Location) error {
	now := time.Now().UTC()
	l.ID = uuid.New()
	l.CreatedAt = now
	l.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toLocationModel(l)).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainLocation.Location, error) {
	var m models.LocationModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainLocation.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return toLocationEntity(&m), nil
}

func (r *LocationRepository) Update(ctx context.Context, l *domainLocation.Location) error {
	l.UpdatedAt = time.Now().UTC()

	result := r.db.DB.WithContext(ctx).
		Model(&models.LocationModel{ID: l.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(toLocationModel(l))

	if result.Error != nil {
		return fmt.Errorf("failed to update location: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainLocation.ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete location: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainLocation.ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepository) List(ctx context.Context, city string) ([]*domainLocation.Location, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.LocationModel{})
	if city != "" {
		db = db.Where("city ILIKE ?", city)
	}

	var rows []models.LocationModel
	if err := db.Order("building_name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*domainLocation.Location, len(rows))
	for i := range rows {
		locations[i] = toLocationEntity(&rows[i])
	}
	return locations, nil
}

func toLocationModel(l *domainLocation.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:               l.ID,
		BuildingName:     l.BuildingName,
		StreetAddress:    l.StreetAddress,
		City:             l.City,
		State:            l.State,
		Zip:              l.Zip,
		Country:          l.Country,
		Phone:            l.Phone,
		HoursOfOperation: l.HoursOfOperation,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toLocationEntity(m *models.LocationModel) *domainLocation.Location {
	return &domainLocation.Location{
		ID:               m.ID,
		BuildingName:     m.BuildingName,
		StreetAddress:    m.StreetAddress,
		City:             m.City,
		State:            m.State,
		Zip:              m.Zip,
		Country:          m.Country,
		Phone:            m.Phone,
		HoursOfOperation: m.HoursOfOperation,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
