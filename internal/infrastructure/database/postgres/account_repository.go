package postgres

import (
	"context"
	"errors"
	"fmt"
	domainAccount "freight-tms/internal/domain/account"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) domainAccount.Repository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *domainAccount.Account) error {
	now := time.Now().UTC()
	a.ID = uuid.New()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(toAccountModel(a)).Error; err != nil {
		if isDuplicateKey(err) {
			return domainAccount.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domainAccount.Account, error) {
	var m models.AccountModel
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAccount.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return toAccountEntity(&m), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*domainAccount.Account, error) {
	var m models.AccountModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", accountID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAccount.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return toAccountEntity(&m), nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"password_hashed": passwordHash,
			"updated_at":      time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAccount.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) ListWithoutProfile(ctx context.Context) ([]*domainAccount.Account, error) {
	var rows []models.AccountModel
	err := r.db.DB.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM profiles p WHERE p.account_id = accounts.id)").
		Order("email ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*domainAccount.Account, len(rows))
	for i := range rows {
		accounts[i] = toAccountEntity(&rows[i])
	}
	return accounts, nil
}

type RefreshTokenRepository struct {
	db *DB
}

func NewRefreshTokenRepository(db *DB) domainAccount.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domainAccount.RefreshToken) error {
	now := time.Now().UTC()
	t.ID = uuid.New()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Revoked = false

	m := &models.RefreshTokenModel{
		ID:        t.ID,
		AccountID: t.AccountID,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

// GetByToken only finds live tokens: revoked or expired ones read as invalid.
func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domainAccount.RefreshToken, error) {
	var m models.RefreshTokenModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ? AND revoked = false AND expires_at > ?", token, time.Now().UTC()).
		First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAccount.ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &domainAccount.RefreshToken{
		ID:        m.ID,
		AccountID: m.AccountID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		Revoked:   m.Revoked,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.DB.WithContext(ctx).
		Model(&models.RefreshTokenModel{}).
		Where("id = ? AND revoked = false", tokenID).
		Updates(map[string]interface{}{
			"revoked":    true,
			"revoked_at": now,
			"updated_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to revoke token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAccount.ErrTokenInvalid
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAll(ctx context.Context, accountID uuid.UUID) error {
	now := time.Now().UTC()
	return r.db.DB.WithContext(ctx).
		Model(&models.RefreshTokenModel{}).
		Where("account_id = ? AND revoked = false", accountID).
		Updates(map[string]interface{}{
			"revoked":    true,
			"revoked_at": now,
			"updated_at": now,
		}).Error
}

// DeleteExpired removes tokens that expired, or were revoked, before now-olderThan.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	result := r.db.DB.WithContext(ctx).
		Where("expires_at < ? OR (revoked = true AND revoked_at < ?)", cutoff, cutoff).
		Delete(&models.RefreshTokenModel{})
	return result.RowsAffected, result.Error
}

func toAccountModel(a *domainAccount.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		PasswordHashed: a.PasswordHashed,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toAccountEntity(m *models.AccountModel) *domainAccount.Account {
	return &domainAccount.Account{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
