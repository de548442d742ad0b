package postgres

import (
	"context"
	"errors"
	"fmt"
	domainCarrier "freight-tms/internal/domain/carrier"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarrierRepository struct {
	db *DB
}

func NewCarrierRepository(db *DB) domainCarrier.Repository {
	return &CarrierRepository{db: db}
}

func (r *CarrierRepository) Create(ctx context.Context, c *domainCarrier.Carrier) error {
	now := time.Now().UTC()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toCarrierModel(c)).Error; err != nil {
		return fmt.Errorf("failed to create carrier: %w", err)
	}
	return nil
}

func (r *CarrierRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainCarrier.Carrier, error) {
	var m models.CarrierModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainCarrier.ErrCarrierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}
	return toCarrierEntity(&m), nil
}

func (r *CarrierRepository) Update(ctx context.Context, c *domainCarrier.Carrier) error {
	c.UpdatedAt = time.Now().UTC()

	result := r.db.DB.WithContext(ctx).
		Model(&models.CarrierModel{ID: c.ID}).
		Select("*").
		Omit("id", "created_by", "created_at").
		Updates(toCarrierModel(c))

	if result.Error != nil {
		return fmt.Errorf("failed to update carrier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainCarrier.ErrCarrierNotFound
	}
	return nil
}

func (r *CarrierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.CarrierModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete carrier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainCarrier.ErrCarrierNotFound
	}
	return nil
}

func (r *CarrierRepository) List(ctx context.Context, status *domainCarrier.Status) ([]*domainCarrier.Carrier, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.CarrierModel{})
	if status != nil {
		db = db.Where("status = ?", string(*status))
	}

	var rows []models.CarrierModel
	if err := db.Order("company_name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list carriers: %w", err)
	}

	carriers := make([]*domainCarrier.Carrier, len(rows))
	for i := range rows {
		carriers[i] = toCarrierEntity(&rows[i])
	}
	return carriers, nil
}

func toCarrierModel(c *domainCarrier.Carrier) *models.CarrierModel {
	return &models.CarrierModel{
		ID:                   c.ID,
		CompanyName:          c.CompanyName,
		StreetAddress:        c.StreetAddress,
		City:                 c.City,
		State:                c.State,
		Zip:                  c.Zip,
		POC:                  c.POC,
		POCPhone:             c.POCPhone,
		POCEmail:             c.POCEmail,
		TruckNumber:          c.TruckNumber,
		ChassisNumber:        c.ChassisNumber,
		MCNumber:             c.MCNumber,
		DOTNumber:            c.DOTNumber,
		EINNumber:            c.EINNumber,
		W9FileID:             c.W9FileID,
		SupportingDocsFileID: c.SupportingDocsFileID,
		PaymentOption:        string(c.PaymentOption),
		PaymentMethod:        string(c.PaymentMethod),
		Website:              c.Website,
		SaferScoreLink:       c.SaferScoreLink,
		Status:               string(c.Status),
		CreatedBy:            c.CreatedBy,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func toCarrierEntity(m *models.CarrierModel) *domainCarrier.Carrier {
	return &domainCarrier.Carrier{
		ID:                   m.ID,
		CompanyName:          m.CompanyName,
		StreetAddress:        m.StreetAddress,
		City:                 m.City,
		State:                m.State,
		Zip:                  m.Zip,
		POC:                  m.POC,
		POCPhone:             m.POCPhone,
		POCEmail:             m.POCEmail,
		TruckNumber:          m.TruckNumber,
		ChassisNumber:        m.ChassisNumber,
		MCNumber:             m.MCNumber,
		DOTNumber:            m.DOTNumber,
		EINNumber:            m.EINNumber,
		W9FileID:             m.W9FileID,
		SupportingDocsFileID: m.SupportingDocsFileID,
		PaymentOption:        domainCarrier.PaymentOption(m.PaymentOption),
		PaymentMethod:        domainCarrier.PaymentMethod(m.PaymentMethod),
		Website:              m.Website,
		SaferScoreLink:       m.SaferScoreLink,
		Status:               domainCarrier.Status(m.Status),
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
