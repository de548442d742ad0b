package postgres

import (
	"context"
	"errors"
	"fmt"
	domainBOL "freight-tms/internal/domain/bol"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BOLRepository struct {
	db *DB
}

func NewBOLRepository(db *DB) domainBOL.Repository {
	return &BOLRepository{db: db}
}

func (r *BOLRepository) Create(ctx context.Context, b *domainBOL.BillOfLading) error {
	b.ID = uuid.New()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	b.UpdatedAt = b.CreatedAt

	if err := r.db.DB.WithContext(ctx).Create(toBOLModel(b)).Error; err != nil {
		return fmt.Errorf("failed to create bill of lading: %w", err)
	}
	return nil
}

func (r *BOLRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainBOL.BillOfLading, error) {
	var m models.BOLModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainBOL.ErrBOLNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill of lading: %w", err)
	}
	return toBOLEntity(&m), nil
}

func (r *BOLRepository) Update(ctx context.Context, b *domainBOL.BillOfLading) error {
	b.UpdatedAt = time.Now().UTC()

	result := r.db.DB.WithContext(ctx).
		Model(&models.BOLModel{ID: b.ID}).
		Select("*").
		Omit("id", "created_by", "created_at").
		Updates(toBOLModel(b))

	if result.Error != nil {
		return fmt.Errorf("failed to update bill of lading: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainBOL.ErrBOLNotFound
	}
	return nil
}

func (r *BOLRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.BOLModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bill of lading: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainBOL.ErrBOLNotFound
	}
	return nil
}

func (r *BOLRepository) List(ctx context.Context) ([]*domainBOL.BillOfLading, error) {
	var rows []models.BOLModel
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bills of lading: %w", err)
	}

	bols := make([]*domainBOL.BillOfLading, len(rows))
	for i := range rows {
		bols[i] = toBOLEntity(&rows[i])
	}
	return bols, nil
}

func toBOLModel(b *domainBOL.BillOfLading) *models.BOLModel {
	items := make([]models.PayItemJSON, len(b.PayItems))
	for i, item := range b.PayItems {
		items[i] = models.PayItemJSON(item)
	}

	return &models.BOLModel{
		ID:                 b.ID,
		LoadID:             b.LoadID,
		Date:               b.Date,
		EquipmentType:      b.EquipmentType,
		Weight:             b.Weight,
		EquipmentLength:    b.EquipmentLength,
		Commodity:          b.Commodity,
		Distance:           b.Distance,
		ContainerNumber:    b.ContainerNumber,
		TractorNumber:      b.TractorNumber,
		CarrierName:        b.CarrierName,
		CarrierAddress:     b.CarrierAddress,
		CarrierCity:        b.CarrierCity,
		CarrierState:       b.CarrierState,
		CarrierZip:         b.CarrierZip,
		DOTNumber:          b.DOTNumber,
		MCNumber:           b.MCNumber,
		DriverName:         b.DriverName,
		NotesAndReferences: b.NotesAndReferences,
		Pickup:             models.PartyColumns(b.Pickup),
		Delivery:           models.PartyColumns(b.Delivery),
		Note:               b.Note,
		PayItems:           items,
		GrandTotal:         b.GrandTotal,
		SignerName:         b.SignerName,
		Signature:          b.Signature,
		SignDate:           b.SignDate,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func toBOLEntity(m *models.BOLModel) *domainBOL.BillOfLading {
	items := make([]domainBOL.PayItem, len(m.PayItems))
	for i, item := range m.PayItems {
		items[i] = domainBOL.PayItem(item)
	}

	return &domainBOL.BillOfLading{
		ID:                 m.ID,
		LoadID:             m.LoadID,
		Date:               m.Date,
		EquipmentType:      m.EquipmentType,
		Weight:             m.Weight,
		EquipmentLength:    m.EquipmentLength,
		Commodity:          m.Commodity,
		Distance:           m.Distance,
		ContainerNumber:    m.ContainerNumber,
		TractorNumber:      m.TractorNumber,
		CarrierName:        m.CarrierName,
		CarrierAddress:     m.CarrierAddress,
		CarrierCity:        m.CarrierCity,
		CarrierState:       m.CarrierState,
		CarrierZip:         m.CarrierZip,
		DOTNumber:          m.DOTNumber,
		MCNumber:           m.MCNumber,
		DriverName:         m.DriverName,
		NotesAndReferences: m.NotesAndReferences,
		Pickup:             domainBOL.Party(m.Pickup),
		Delivery:           domainBOL.Party(m.Delivery),
		Note:               m.Note,
		PayItems:           items,
		GrandTotal:         m.GrandTotal,
		SignerName:         m.SignerName,
		Signature:          m.Signature,
		SignDate:           m.SignDate,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
