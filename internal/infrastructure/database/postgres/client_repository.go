package postgres

import (
	"context"
	"errors"
	"fmt"
	domainClient "freight-tms/internal/domain/client"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) domainClient.Repository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domainClient.Client) error {
	now := time.Now().UTC()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toClientModel(c)).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainClient.Client, error) {
	var m models.ClientModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainClient.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return toClientEntity(&m), nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domainClient.Client) error {
	c.UpdatedAt = time.Now().UTC()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ClientModel{ID: c.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(toClientModel(c))

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainClient.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainClient.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context, filter *domainClient.Filter) ([]*domainClient.Client, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.ClientModel{})

	if filter != nil {
		if filter.BusinessType != nil {
			db = db.Where("business_type = ?", string(*filter.BusinessType))
		}
		if filter.Search != "" {
			search := "%" + filter.Search + "%"
			db = db.Where("business_name ILIKE ? OR poc_name ILIKE ? OR city ILIKE ?", search, search, search)
		}
	}

	var rows []models.ClientModel
	if err := db.Order("business_name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*domainClient.Client, len(rows))
	for i := range rows {
		clients[i] = toClientEntity(&rows[i])
	}
	return clients, nil
}

func toClientModel(c *domainClient.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:                   c.ID,
		BusinessType:         string(c.BusinessType),
		BusinessName:         c.BusinessName,
		StreetAddress:        c.StreetAddress,
		City:                 c.City,
		State:                c.State,
		Zip:                  c.Zip,
		Country:              c.Country,
		EIN:                  c.EIN,
		DOT:                  c.DOT,
		MC:                   c.MC,
		POCName:              c.POCName,
		POCDob:               c.POCDob,
		POCPhone:             c.POCPhone,
		CompanyPhone:         c.CompanyPhone,
		CompanyEmail:         c.CompanyEmail,
		AccountsPayableEmail: c.AccountsPayableEmail,
		Factorable:           c.Factorable,
		CreditApproved:       c.CreditApproved,
		CreditUsed:           c.CreditUsed,
		DocumentsStorageID:   c.DocumentsStorageID,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func toClientEntity(m *models.ClientModel) *domainClient.Client {
	return &domainClient.Client{
		ID:                   m.ID,
		BusinessType:         domainClient.BusinessType(m.BusinessType),
		BusinessName:         m.BusinessName,
		StreetAddress:        m.StreetAddress,
		City:                 m.City,
		State:                m.State,
		Zip:                  m.Zip,
		Country:              m.Country,
		EIN:                  m.EIN,
		DOT:                  m.DOT,
		MC:                   m.MC,
		POCName:              m.POCName,
		POCDob:               m.POCDob,
		POCPhone:             m.POCPhone,
		CompanyPhone:         m.CompanyPhone,
		CompanyEmail:         m.CompanyEmail,
		AccountsPayableEmail: m.AccountsPayableEmail,
		Factorable:           m.Factorable,
		CreditApproved:       m.CreditApproved,
		CreditUsed:           m.CreditUsed,
		DocumentsStorageID:   m.DocumentsStorageID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
