package account

import (
	"context"
	"errors"
	"fmt"
	"freight-tms/internal/config"
	domainAccount "freight-tms/internal/domain/account"
	"freight-tms/internal/logger"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements account use cases: registration, login and token rotation.
type Service struct {
	accountRepo      domainAccount.Repository
	refreshTokenRepo domainAccount.RefreshTokenRepository
	config           *config.Config
}

func NewService(
	accountRepo domainAccount.Repository,
	refreshTokenRepo domainAccount.RefreshTokenRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		accountRepo:      accountRepo,
		refreshTokenRepo: refreshTokenRepo,
		config:           cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeWeakPassword, err.Error(), nil)
	}

	email, err := utils.ValidateAndSanitizeEmail(req.Email)
	if err != nil {
		return nil, appErrors.Validation(err.Error(), nil)
	}

	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainAccount.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, domainAccount.ErrAccountAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &domainAccount.Account{
		Name:           utils.SanitizeString(req.Name),
		Email:          email,
		PasswordHashed: hashedPassword,
	}
	if err := s.accountRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, a)
	if err != nil {
		return nil, err
	}

	logger.Info("Account registered successfully",
		zap.String("account_id", a.ID.String()),
		zap.String("email", a.Email),
		zap.String("event", "account_registered"),
	)

	return resp, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	email := utils.SanitizeEmail(req.Email)
	a, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainAccount.ErrAccountNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", email),
				zap.String("event", "account_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(a.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("account_id", a.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, a)
	if err != nil {
		return nil, err
	}

	logger.Info("Account logged in successfully",
		zap.String("account_id", a.ID.String()),
		zap.String("event", "login_success"),
	)

	return resp, nil
}

func (s *Service) issueTokens(ctx context.Context, a *domainAccount.Account) (*AuthResponse, error) {
	tokenPair, err := utils.GenerateTokenPair(
		a.ID,
		a.Email,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.storeRefreshToken(ctx, a.ID, tokenPair.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Account:      ToAccountResponse(a),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}

func (s *Service) storeRefreshToken(ctx context.Context, accountID uuid.UUID, token string) error {
	refreshToken := &domainAccount.RefreshToken{
		AccountID: accountID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.Validation("Invalid input", err)
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError(appErrors.CodeWeakPassword, err.Error(), nil)
	}

	a, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(a.PasswordHashed, req.OldPassword) {
		logger.Warn("Password change attempt with invalid old password",
			zap.String("account_id", a.ID.String()),
			zap.String("event", "password_change_failed_invalid_old_password"),
		)
		return appErrors.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accountRepo.UpdatePassword(ctx, accountID, hashedPassword); err != nil {
		return err
	}

	// Existing sessions end with the old password.
	if err := s.refreshTokenRepo.RevokeAll(ctx, accountID); err != nil {
		logger.Error("Failed to revoke refresh tokens after password change",
			zap.String("account_id", accountID.String()),
			zap.Error(err),
		)
	}

	logger.Info("Password changed successfully",
		zap.String("account_id", a.ID.String()),
		zap.String("event", "password_change_success"),
	)

	return nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ValidateToken(refreshToken, s.config.JWT.Secret)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		logger.Warn("Token refresh attempt with invalid token",
			zap.String("event", "token_refresh_failed_invalid_token"),
			zap.Error(err),
		)
		return nil, appErrors.ErrInvalidToken
	}

	dbToken, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		logger.Warn("Token refresh attempt with unknown token",
			zap.String("account_id", claims.AccountID.String()),
			zap.String("event", "token_refresh_failed_token_not_found"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	if dbToken.AccountID != claims.AccountID {
		logger.Warn("Token refresh attempt with mismatched account ID",
			zap.String("token_account_id", dbToken.AccountID.String()),
			zap.String("claim_account_id", claims.AccountID.String()),
			zap.String("event", "token_refresh_failed_account_mismatch"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Revoke(ctx, dbToken.ID); err != nil {
		// Lost a race with another refresh of the same token.
		if errors.Is(err, domainAccount.ErrTokenInvalid) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	tokenPair, err := utils.GenerateTokenPair(
		claims.AccountID,
		claims.Email,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.storeRefreshToken(ctx, claims.AccountID, tokenPair.RefreshToken); err != nil {
		return nil, err
	}

	logger.Debug("Token refreshed successfully",
		zap.String("account_id", claims.AccountID.String()),
		zap.String("old_token_id", dbToken.ID.String()),
		zap.String("event", "token_refresh_success"),
	)

	return tokenPair, nil
}

func (s *Service) RevokeToken(ctx context.Context, accountID uuid.UUID, refreshToken string) error {
	dbToken, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return appErrors.ErrInvalidToken
	}

	if dbToken.AccountID != accountID {
		return appErrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Revoke(ctx, dbToken.ID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	logger.Info("Refresh token revoked successfully",
		zap.String("account_id", accountID.String()),
		zap.String("token_id", dbToken.ID.String()),
		zap.String("event", "token_revoked"),
	)

	return nil
}
