package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

const currencyConfigColumns = `guild_id, currency_name, currency_symbol, decimal_places,
	min_transfer_amount, max_transfer_amount, daily_transfer_limit, enable_negative_balance,
	created_at, updated_at`

type CurrencyConfigRepository struct {
	db uow.DBTX
}

func NewCurrencyConfigRepository(db uow.DBTX) *CurrencyConfigRepository {
	return &CurrencyConfigRepository{db: db}
}

// GetOrCreateDefault возвращает настройки валюты гильдии, материализуя строку с дефолтами
// при первом обращении. ON CONFLICT DO NOTHING делает вызов безопасным при гонке двух
// первых обращений к одной гильдии.
func (r *CurrencyConfigRepository) GetOrCreateDefault(ctx context.Context, guildID int64) (*domain.CurrencyConfig, error) {
	_, insertErr := r.db.Exec(ctx, `
		INSERT INTO currency_configs (guild_id)
		VALUES ($1)
		ON CONFLICT (guild_id) DO NOTHING`,
		guildID,
	)
	if insertErr != nil {
		return nil, convertErr(insertErr, "materializing currency config of guild %d", guildID)
	}

	row := r.db.QueryRow(ctx, `SELECT `+currencyConfigColumns+` FROM currency_configs WHERE guild_id = $1`, guildID)
	config, err := scanCurrencyConfig(row)
	if err != nil {
		return nil, convertErr(err, "getting currency config of guild %d", guildID)
	}
	return config, nil
}

// Update применяет частичное обновление: nil-поля остаются прежними (COALESCE на стороне базы).
// Возвращает domain.ErrRecordNotFound если конфиг гильдии еще не материализован.
func (r *CurrencyConfigRepository) Update(
	ctx context.Context,
	guildID int64,
	args repoargs.CurrencyConfigUpdate,
) (*domain.CurrencyConfig, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE currency_configs SET
			currency_name           = COALESCE($2, currency_name),
			currency_symbol         = COALESCE($3, currency_symbol),
			decimal_places          = COALESCE($4, decimal_places),
			min_transfer_amount     = COALESCE($5, min_transfer_amount),
			max_transfer_amount     = COALESCE($6, max_transfer_amount),
			daily_transfer_limit    = COALESCE($7, daily_transfer_limit),
			enable_negative_balance = COALESCE($8, enable_negative_balance),
			updated_at              = now()
		WHERE guild_id = $1
		RETURNING `+currencyConfigColumns,
		guildID,
		args.CurrencyName,
		args.CurrencySymbol,
		args.DecimalPlaces,
		args.MinTransferAmount,
		args.MaxTransferAmount,
		args.DailyTransferLimit,
		args.EnableNegativeBalance,
	)
	config, err := scanCurrencyConfig(row)
	if err != nil {
		return nil, convertErr(err, "updating currency config of guild %d", guildID)
	}
	return config, nil
}

func scanCurrencyConfig(row pgx.Row) (*domain.CurrencyConfig, error) {
	var config domain.CurrencyConfig
	err := row.Scan(
		&config.GuildID,
		&config.CurrencyName,
		&config.CurrencySymbol,
		&config.DecimalPlaces,
		&config.MinTransferAmount,
		&config.MaxTransferAmount,
		&config.DailyTransferLimit,
		&config.EnableNegativeBalance,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &config, nil
}
