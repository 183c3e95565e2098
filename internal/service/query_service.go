package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

const (
	// MaxQueryLimit верхняя граница limit для выборок истории и аудита.
	MaxQueryLimit     uint = 1000
	DefaultQueryLimit uint = 50

	topHoldersLimit uint = 10
)

// QueryService read-сторона леджера. Работает поверх пула вне транзакций и никогда не берет
// блокировки движка: чтения видят состояние либо до, либо после перевода, промежуточных
// состояний в базе не существует.
type QueryService struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
}

func NewQueryService(u uow.UOW) (*QueryService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr //nolint:wrapcheck
	}
	transactionRepo, txErr := uow.GetRepositoryAs[TransactionRepository](
		u,
		uow.RepositoryName(repoargs.TransactionRepoName),
	)
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return &QueryService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}, nil
}

func (q *QueryService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := q.accountRepo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
		}
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

func (q *QueryService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := q.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetGuildAccounts возвращает счета гильдии по дате создания по возрастанию.
func (q *QueryService) GetGuildAccounts(
	ctx context.Context,
	guildID int64,
	filter repoargs.AccountFilter,
) ([]domain.Account, error) {
	accounts, err := q.accountRepo.ListByGuild(ctx, guildID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return accounts, nil
}

// GetTransactionHistory возвращает историю счета, свежие записи первыми. Limit ограничивается
// сверху MaxQueryLimit, нулевой limit подменяется DefaultQueryLimit.
func (q *QueryService) GetTransactionHistory(
	ctx context.Context,
	accountID string,
	limit uint,
	transactionType *domain.TransactionType,
) ([]domain.Transaction, error) {
	transactions, err := q.transactionRepo.History(ctx, repoargs.HistoryQuery{
		AccountID: accountID,
		Limit:     clampLimit(limit),
		Type:      transactionType,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// GetAuditLog возвращает транзакции гильдии для админской отчетности. Формат записей тот же,
// что и у истории счета: никакого проприетарного представления у аудита нет.
func (q *QueryService) GetAuditLog(
	ctx context.Context,
	guildID int64,
	limit uint,
	transactionType *domain.TransactionType,
	userID *string,
) ([]domain.Transaction, error) {
	transactions, err := q.transactionRepo.GuildAudit(ctx, repoargs.AuditQuery{
		GuildID: guildID,
		Limit:   clampLimit(limit),
		Type:    transactionType,
		UserID:  userID,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

type EconomyStatistics struct {
	GuildID        int64
	TotalAccounts  int64
	ActiveAccounts int64
	TotalBalance   decimal.Decimal
	Transactions   []repoargs.TypeAggregation
	TopHolders     []repoargs.TopHolder
}

// GetEconomyStatistics собирает сводку экономики гильдии: счета, суммарный баланс,
// транзакции в разрезе типов и самые богатые счета.
func (q *QueryService) GetEconomyStatistics(ctx context.Context, guildID int64) (*EconomyStatistics, error) {
	accountStats, accErr := q.accountRepo.GuildStats(ctx, guildID)
	if accErr != nil {
		return nil, fmt.Errorf("guild %d statistics: %w", guildID, accErr)
	}
	typeAggregations, txErr := q.transactionRepo.CountByType(ctx, guildID)
	if txErr != nil {
		return nil, fmt.Errorf("guild %d statistics: %w", guildID, txErr)
	}
	topHolders, topErr := q.accountRepo.TopHolders(ctx, guildID, topHoldersLimit)
	if topErr != nil {
		return nil, fmt.Errorf("guild %d statistics: %w", guildID, topErr)
	}

	return &EconomyStatistics{
		GuildID:        guildID,
		TotalAccounts:  accountStats.TotalAccounts,
		ActiveAccounts: accountStats.ActiveAccounts,
		TotalBalance:   accountStats.TotalBalance,
		Transactions:   typeAggregations,
		TopHolders:     topHolders,
	}, nil
}

func clampLimit(limit uint) uint {
	if limit == 0 {
		return DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}
