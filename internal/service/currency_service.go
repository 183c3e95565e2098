package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

// CurrencyService настройки валюты гильдий. Чтение материализует дефолты при первом
// обращении, обновление валидируется и фиксируется как аудит-событие (не транзакция).
type CurrencyService struct {
	uow   uow.UOW
	repo  CurrencyConfigRepository
	audit *AuditRecorder
}

func NewCurrencyService(u uow.UOW, audit *AuditRecorder) (*CurrencyService, error) {
	repo, repoErr := uow.GetRepositoryAs[CurrencyConfigRepository](
		u,
		uow.RepositoryName(repoargs.CurrencyConfigRepoName),
	)
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &CurrencyService{
		uow:   u,
		repo:  repo,
		audit: audit,
	}, nil
}

func (s *CurrencyService) GetConfig(ctx context.Context, guildID int64) (*domain.CurrencyConfig, error) {
	config, err := s.repo.GetOrCreateDefault(ctx, guildID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return config, nil
}

// UpdateConfig применяет частичное обновление настроек. Валидация идет по смерженному
// состоянию: запрос, меняющий только min_transfer_amount, не может молча проскочить мимо
// уже настроенного max_transfer_amount.
func (s *CurrencyService) UpdateConfig(
	ctx context.Context,
	guildID int64,
	args repoargs.CurrencyConfigUpdate,
	updatedBy string,
) (*domain.CurrencyConfig, error) {
	var updated *domain.CurrencyConfig
	var old *domain.CurrencyConfig

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[CurrencyConfigRepository](tx, uow.RepositoryName(repoargs.CurrencyConfigRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, currentErr := repo.GetOrCreateDefault(c, guildID)
		if currentErr != nil {
			return currentErr //nolint:wrapcheck
		}
		old = current

		if validationErr := validateConfigUpdate(current, args); validationErr != nil {
			return validationErr
		}

		var updErr error
		updated, updErr = repo.Update(c, guildID, args)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating currency config of guild %d: %w", guildID, txErr)
	}

	s.audit.ConfigChange(guildID, updatedBy, old, updated)
	return updated, nil
}

// validateConfigUpdate проверяет частичное обновление на фоне текущих настроек.
func validateConfigUpdate(current *domain.CurrencyConfig, args repoargs.CurrencyConfigUpdate) error {
	if args.DecimalPlaces != nil && *args.DecimalPlaces < 0 {
		return fmt.Errorf("%w: decimal places %d is negative", domain.ErrConfigValidation, *args.DecimalPlaces)
	}

	for name, amount := range map[string]*decimal.Decimal{
		"min_transfer_amount":  args.MinTransferAmount,
		"max_transfer_amount":  args.MaxTransferAmount,
		"daily_transfer_limit": args.DailyTransferLimit,
	} {
		if amount != nil && !amount.IsPositive() {
			return fmt.Errorf("%w: %s %s is not positive", domain.ErrConfigValidation, name, amount)
		}
	}

	minAmount := current.MinTransferAmount
	if args.MinTransferAmount != nil {
		minAmount = *args.MinTransferAmount
	}
	maxAmount := current.MaxTransferAmount
	if args.MaxTransferAmount != nil {
		maxAmount = *args.MaxTransferAmount
	}
	if minAmount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: min %s greater than max %s", domain.ErrConfigValidation, minAmount, maxAmount)
	}
	return nil
}
