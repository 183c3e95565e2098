package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.AccountCreate) (*domain.Account, error)
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	GetForUpdate(ctx context.Context, accountID string) (*domain.Account, error)
	FindByOwner(
		ctx context.Context,
		guildID int64,
		accountType domain.AccountType,
		ownerRef string,
	) (*domain.Account, error)
	ListByGuild(ctx context.Context, guildID int64, filter repoargs.AccountFilter) ([]domain.Account, error)
	AdjustBalance(ctx context.Context, accountID string, delta decimal.Decimal) (*domain.Account, error)
	SetActive(ctx context.Context, accountID string, active bool) (*domain.Account, error)
	SetFrozen(ctx context.Context, accountID string, frozen bool) (*domain.Account, error)
	GuildStats(ctx context.Context, guildID int64) (*repoargs.GuildAccountStats, error)
	TopHolders(ctx context.Context, guildID int64, limit uint) ([]repoargs.TopHolder, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	History(ctx context.Context, q repoargs.HistoryQuery) ([]domain.Transaction, error)
	GuildAudit(ctx context.Context, q repoargs.AuditQuery) ([]domain.Transaction, error)
	OutgoingTransferSumSince(
		ctx context.Context,
		accountID string,
		since time.Time,
	) (decimal.Decimal, error)
	SignedSum(ctx context.Context, accountID string) (decimal.Decimal, error)
	CountByType(ctx context.Context, guildID int64) ([]repoargs.TypeAggregation, error)
}

type CurrencyConfigRepository interface {
	GetOrCreateDefault(ctx context.Context, guildID int64) (*domain.CurrencyConfig, error)
	Update(
		ctx context.Context,
		guildID int64,
		args repoargs.CurrencyConfigUpdate,
	) (*domain.CurrencyConfig, error)
}
