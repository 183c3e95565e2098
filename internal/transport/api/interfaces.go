package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/internal/service"
)

// LedgerServicer интерфейс исключительно для моков.
type LedgerServicer interface {
	CreateAccount(ctx context.Context, args service.CreateAccountArgs) (*domain.Account, error)
	Deposit(ctx context.Context, args service.MovementArgs) (*domain.Transaction, error)
	Reward(ctx context.Context, args service.MovementArgs) (*domain.Transaction, error)
	Withdraw(ctx context.Context, args service.MovementArgs) (*domain.Transaction, error)
	Transfer(ctx context.Context, args service.TransferArgs) (*domain.Transaction, error)
	DeactivateAccount(ctx context.Context, accountID, actor string) (*domain.Account, error)
	ReactivateAccount(ctx context.Context, accountID, actor string) (*domain.Account, error)
	UnfreezeAccount(ctx context.Context, accountID, actor string) (*domain.Account, error)
	VerifyAccount(ctx context.Context, accountID, actor string) error
}

type QueryServicer interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	GetGuildAccounts(
		ctx context.Context,
		guildID int64,
		filter repoargs.AccountFilter,
	) ([]domain.Account, error)
	GetTransactionHistory(
		ctx context.Context,
		accountID string,
		limit uint,
		transactionType *domain.TransactionType,
	) ([]domain.Transaction, error)
	GetAuditLog(
		ctx context.Context,
		guildID int64,
		limit uint,
		transactionType *domain.TransactionType,
		userID *string,
	) ([]domain.Transaction, error)
	GetEconomyStatistics(ctx context.Context, guildID int64) (*service.EconomyStatistics, error)
}

type CurrencyServicer interface {
	GetConfig(ctx context.Context, guildID int64) (*domain.CurrencyConfig, error)
	UpdateConfig(
		ctx context.Context,
		guildID int64,
		args repoargs.CurrencyConfigUpdate,
		updatedBy string,
	) (*domain.CurrencyConfig, error)
}
