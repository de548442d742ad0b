package postgres

import (
	"context"
	"errors"
	"fmt"
	domainLoad "freight-tms/internal/domain/load"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// identity columns are written once on insert.
var loadIdentityColumns = []string{"id", "load_id", "load_count", "tracking_number", "created_at"}

type LoadRepository struct {
	db *DB
}

func NewLoadRepository(db *DB) domainLoad.Repository {
	return &LoadRepository{db: db}
}

func (r *LoadRepository) Create(ctx context.Context, l *domainLoad.Load) error {
	now := time.Now().UTC()
	l.ID = uuid.New()
	l.CreatedAt = now
	l.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toLoadModel(l)).Error; err != nil {
		if isDuplicateKey(err) {
			return domainLoad.ErrLoadAlreadyExists
		}
		return fmt.Errorf("failed to create load: %w", err)
	}
	return nil
}

func (r *LoadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainLoad.Load, error) {
	var m models.LoadModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainLoad.ErrLoadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get load: %w", err)
	}
	return toLoadEntity(&m), nil
}

func (r *LoadRepository) Update(ctx context.Context, l *domainLoad.Load) error {
	l.UpdatedAt = time.Now().UTC()

	result := r.db.DB.WithContext(ctx).
		Model(&models.LoadModel{ID: l.ID}).
		Select("*").
		Omit(loadIdentityColumns...).
		Updates(toLoadModel(l))

	if result.Error != nil {
		return fmt.Errorf("failed to update load: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainLoad.ErrLoadNotFound
	}
	return nil
}

func (r *LoadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.LoadModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete load: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainLoad.ErrLoadNotFound
	}
	return nil
}

func (r *LoadRepository) List(ctx context.Context, filter *domainLoad.Filter) ([]*domainLoad.Load, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.LoadModel{})

	if filter != nil {
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		if filter.Progress != nil {
			db = db.Where("progress = ?", string(*filter.Progress))
		}
		if filter.AssignedAgentID != nil {
			db = db.Where("assigned_agent_id = ?", *filter.AssignedAgentID)
		}
	}

	var rows []models.LoadModel
	if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list loads: %w", err)
	}

	loads := make([]*domainLoad.Load, len(rows))
	for i := range rows {
		loads[i] = toLoadEntity(&rows[i])
	}
	return loads, nil
}

func (r *LoadRepository) SetClientPaidDate(ctx context.Context, id uuid.UUID, date *string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.LoadModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"date_client_paid": date,
			"updated_at":       time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update invoice status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainLoad.ErrLoadNotFound
	}
	return nil
}

func (r *LoadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&models.LoadModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count loads: %w", err)
	}
	return count, nil
}

func (r *LoadRepository) MaxLoadCount(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.LoadModel{}).
		Select("COALESCE(MAX(load_count), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read load counter: %w", err)
	}
	return max, nil
}

// CountSequencer numbers loads as row count + 1. Two concurrent creates can
// draw the same number; use the redis sequencer where that matters.
type CountSequencer struct {
	repo domainLoad.Repository
}

func NewCountSequencer(repo domainLoad.Repository) *CountSequencer {
	return &CountSequencer{repo: repo}
}

func (s *CountSequencer) Next(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}

func toLoadModel(l *domainLoad.Load) *models.LoadModel {
	aux := make([]models.AuxChargeJSON, len(l.AuxCharges))
	for i, c := range l.AuxCharges {
		aux[i] = models.AuxChargeJSON{Reason: c.Reason, Quantity: c.Quantity, Charge: c.Charge}
	}

	return &models.LoadModel{
		ID:                   l.ID,
		LoadID:               l.LoadID,
		LoadCount:            l.LoadCount,
		TrackingNumber:       l.TrackingNumber,
		CustomerBusinessName: l.CustomerBusinessName,
		LastDateFree:         l.LastDateFree,
		Status:               string(l.Status),
		Progress:             string(l.Progress),
		Commodity:            l.Commodity,
		TrailerNumber:        l.TrailerNumber,
		TrailerType:          string(l.TrailerType),
		Layovers:             l.Layovers,
		AssignedAgentID:      l.AssignedAgentID,
		Branch:               string(l.Branch),
		Pickup:               models.StopColumns(l.Pickup),
		Dropoff:              models.StopColumns(l.Dropoff),
		Carrier:              models.CarrierColumns(l.Carrier),
		ClientRateCon:        l.ClientRateCon,
		CarrierPayout:        l.CarrierPayout,
		AgentPayout:          l.AgentPayout,
		GrossProfit:          l.GrossProfit,
		NetProfit:            l.NetProfit,
		TotalFinalInvoice:    l.TotalFinalInvoice,
		TotalWeight:          l.TotalWeight,
		ActualWeight:         l.ActualWeight,
		AuxCharges:           aux,
		DateQuotedToClient:   l.DateQuotedToClient,
		DateDelivered:        l.DateDelivered,
		DateInvoicedClient:   l.DateInvoicedClient,
		DateCarrierPaid:      l.DateCarrierPaid,
		DateAgentPaid:        l.DateAgentPaid,
		DateClientPaid:       l.DateClientPaid,
		Notes:                l.Notes,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

func toLoadEntity(m *models.LoadModel) *domainLoad.Load {
	aux := make([]domainLoad.AuxCharge, len(m.AuxCharges))
	for i, c := range m.AuxCharges {
		aux[i] = domainLoad.AuxCharge{Reason: c.Reason, Quantity: c.Quantity, Charge: c.Charge}
	}

	return &domainLoad.Load{
		ID:                   m.ID,
		LoadID:               m.LoadID,
		LoadCount:            m.LoadCount,
		TrackingNumber:       m.TrackingNumber,
		CustomerBusinessName: m.CustomerBusinessName,
		LastDateFree:         m.LastDateFree,
		Status:               domainLoad.Status(m.Status),
		Progress:             domainLoad.Progress(m.Progress),
		Commodity:            m.Commodity,
		TrailerNumber:        m.TrailerNumber,
		TrailerType:          domainLoad.TrailerType(m.TrailerType),
		Layovers:             m.Layovers,
		AssignedAgentID:      m.AssignedAgentID,
		Branch:               domainLoad.Branch(m.Branch),
		Pickup:               domainLoad.Stop(m.Pickup),
		Dropoff:              domainLoad.Stop(m.Dropoff),
		Carrier:              domainLoad.CarrierInfo(m.Carrier),
		Financials: domainLoad.Financials{
			ClientRateCon:     m.ClientRateCon,
			CarrierPayout:     m.CarrierPayout,
			AgentPayout:       m.AgentPayout,
			GrossProfit:       m.GrossProfit,
			NetProfit:         m.NetProfit,
			TotalFinalInvoice: m.TotalFinalInvoice,
			TotalWeight:       m.TotalWeight,
			ActualWeight:      m.ActualWeight,
		},
		AuxCharges: aux,
		Milestones: domainLoad.Milestones{
			DateQuotedToClient: m.DateQuotedToClient,
			DateDelivered:      m.DateDelivered,
			DateInvoicedClient: m.DateInvoicedClient,
			DateCarrierPaid:    m.DateCarrierPaid,
			DateAgentPaid:      m.DateAgentPaid,
			DateClientPaid:     m.DateClientPaid,
		},
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
