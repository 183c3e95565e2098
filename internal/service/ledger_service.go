package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/keylock"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

// LedgerService ядро леджера: все мутации балансов проходят только через него.
// Дисциплина каждой операции одинаковая: keylock на затронутые счета -> одна pgx транзакция
// (цепочка предусловий, смещение балансов, запись в журнал транзакций) -> аудит исхода.
// Частично примененных состояний не существует: операция либо коммитится целиком, либо
// откатывается целиком.
type LedgerService struct {
	uow   uow.UOW
	locks *keylock.Locker
	audit *AuditRecorder
}

func NewLedgerService(u uow.UOW, locks *keylock.Locker, audit *AuditRecorder) *LedgerService {
	return &LedgerService{
		uow:   u,
		locks: locks,
		audit: audit,
	}
}

type CreateAccountArgs struct {
	GuildID        int64
	AccountType    domain.AccountType
	OwnerRef       string
	InitialBalance decimal.Decimal
	CreatedBy      string
}

// CreateAccount создает счет для тройки (guild_id, account_type, owner_ref). Если тройка уже
// занята (в том числе деактивированным счетом), возвращает *domain.DuplicateAccountError с
// существующим счетом. Ненулевой начальный баланс оформляется DEPOSIT транзакцией в той же
// атомарной единице.
func (s *LedgerService) CreateAccount(ctx context.Context, args CreateAccountArgs) (*domain.Account, error) {
	if !args.AccountType.Valid() {
		return nil, fmt.Errorf("creating account: %w: %q", domain.ErrInvalidAccountType, args.AccountType)
	}
	// у счета совета owner_ref фиксированный
	if args.AccountType == domain.AccountTypeCouncil {
		args.OwnerRef = domain.CouncilOwnerRef
	}
	if args.OwnerRef == "" {
		return nil, fmt.Errorf("creating account: %w: empty", domain.ErrInvalidOwnerRef)
	}

	accountID := domain.BuildAccountID(args.AccountType, args.GuildID, args.OwnerRef)
	entry := auditEntry{Operation: "create_account", Actor: args.CreatedBy, To: accountID, Amount: args.InitialBalance}

	release, lockErr := s.locks.Lock(ctx, accountID)
	if lockErr != nil {
		s.audit.record(entry, lockErr)
		return nil, fmt.Errorf("creating account `%s`: %w", accountID, lockErr)
	}
	defer release()

	var account *domain.Account
	txErr := s.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		accRepo, txRepo, cfgRepo, reposErr := ledgerRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		config, cfgErr := cfgRepo.GetOrCreateDefault(c, args.GuildID)
		if cfgErr != nil {
			return cfgErr //nolint:wrapcheck
		}

		if args.InitialBalance.IsNegative() && !config.EnableNegativeBalance {
			return fmt.Errorf("negative initial balance %s: %w", args.InitialBalance, domain.ErrInvalidAmount)
		}
		if !domain.FitsPrecision(args.InitialBalance, config.DecimalPlaces) {
			return fmt.Errorf("initial balance precision exceeds %d places: %w",
				config.DecimalPlaces, domain.ErrInvalidAmount)
		}

		var createErr error
		account, createErr = accRepo.Create(c, repoargs.AccountCreate{
			ID:          accountID,
			GuildID:     args.GuildID,
			AccountType: args.AccountType,
			OwnerRef:    args.OwnerRef,
			Balance:     args.InitialBalance,
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				existing, findErr := accRepo.FindByOwner(c, args.GuildID, args.AccountType, args.OwnerRef)
				if findErr != nil {
					return findErr //nolint:wrapcheck
				}
				return domain.NewDuplicateAccountError(existing)
			}
			return createErr //nolint:wrapcheck
		}

		if account.Balance.IsPositive() {
			if _, transErr := txRepo.Create(c, repoargs.TransactionCreate{
				GuildID:     args.GuildID,
				ToAccountID: &account.ID,
				Amount:      account.Balance,
				Type:        domain.TransactionTypeDeposit,
				Reason:      "initial balance",
				CreatedBy:   args.CreatedBy,
			}); transErr != nil {
				return transErr //nolint:wrapcheck
			}
		}
		return nil
	})

	s.audit.record(entry, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("creating account `%s`: %w", accountID, txErr)
	}
	return account, nil
}

type MovementArgs struct {
	AccountID string
	Amount    decimal.Decimal
	Reason    string
	CreatedBy string
}

// Deposit системное зачисление на счет. Лимиты переводов к зачислениям не применяются.
func (s *LedgerService) Deposit(ctx context.Context, args MovementArgs) (*domain.Transaction, error) {
	return s.systemMovement(ctx, "deposit", domain.TransactionTypeDeposit, args)
}

// Reward зачисление-награда (точка входа диспетчера достижений). Семантика депозита,
// но в истории и статистике такие движения различимы по типу.
func (s *LedgerService) Reward(ctx context.Context, args MovementArgs) (*domain.Transaction, error) {
	return s.systemMovement(ctx, "reward", domain.TransactionTypeReward, args)
}

func (s *LedgerService) systemMovement(
	ctx context.Context,
	operation string,
	transactionType domain.TransactionType,
	args MovementArgs,
) (*domain.Transaction, error) {
	entry := auditEntry{Operation: operation, Actor: args.CreatedBy, To: args.AccountID, Amount: args.Amount}

	if !args.Amount.IsPositive() {
		err := fmt.Errorf("non-positive amount %s: %w", args.Amount, domain.ErrInvalidAmount)
		s.audit.record(entry, err)
		return nil, fmt.Errorf("%s to `%s`: %w", operation, args.AccountID, err)
	}

	release, lockErr := s.locks.Lock(ctx, args.AccountID)
	if lockErr != nil {
		s.audit.record(entry, lockErr)
		return nil, fmt.Errorf("%s to `%s`: %w", operation, args.AccountID, lockErr)
	}
	defer release()

	var trans *domain.Transaction
	txErr := s.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		accRepo, txRepo, cfgRepo, reposErr := ledgerRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		account, accErr := getMutableAccount(c, accRepo, args.AccountID)
		if accErr != nil {
			return accErr
		}

		config, cfgErr := cfgRepo.GetOrCreateDefault(c, account.GuildID)
		if cfgErr != nil {
			return cfgErr //nolint:wrapcheck
		}
		if !domain.FitsPrecision(args.Amount, config.DecimalPlaces) {
			return fmt.Errorf("amount precision exceeds %d places: %w", config.DecimalPlaces, domain.ErrInvalidAmount)
		}

		if _, adjErr := accRepo.AdjustBalance(c, account.ID, args.Amount); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		var transErr error
		trans, transErr = txRepo.Create(c, repoargs.TransactionCreate{
			GuildID:     account.GuildID,
			ToAccountID: &account.ID,
			Amount:      args.Amount,
			Type:        transactionType,
			Reason:      args.Reason,
			CreatedBy:   args.CreatedBy,
		})
		return transErr //nolint:wrapcheck
	})

	s.audit.record(entry, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("%s to `%s`: %w", operation, args.AccountID, txErr)
	}
	return trans, nil
}

// Withdraw системное списание со счета. Уход баланса в минус разрешен только гильдиям
// с enable_negative_balance, иначе domain.ErrInsufficientFunds.
func (s *LedgerService) Withdraw(ctx context.Context, args MovementArgs) (*domain.Transaction, error) {
	entry := auditEntry{Operation: "withdraw", Actor: args.CreatedBy, From: args.AccountID, Amount: args.Amount}

	if !args.Amount.IsPositive() {
		err := fmt.Errorf("non-positive amount %s: %w", args.Amount, domain.ErrInvalidAmount)
		s.audit.record(entry, err)
		return nil, fmt.Errorf("withdraw from `%s`: %w", args.AccountID, err)
	}

	release, lockErr := s.locks.Lock(ctx, args.AccountID)
	if lockErr != nil {
		s.audit.record(entry, lockErr)
		return nil, fmt.Errorf("withdraw from `%s`: %w", args.AccountID, lockErr)
	}
	defer release()

	var trans *domain.Transaction
	txErr := s.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		accRepo, txRepo, cfgRepo, reposErr := ledgerRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		account, accErr := getMutableAccount(c, accRepo, args.AccountID)
		if accErr != nil {
			return accErr
		}

		config, cfgErr := cfgRepo.GetOrCreateDefault(c, account.GuildID)
		if cfgErr != nil {
			return cfgErr //nolint:wrapcheck
		}
		if !domain.FitsPrecision(args.Amount, config.DecimalPlaces) {
			return fmt.Errorf("amount precision exceeds %d places: %w", config.DecimalPlaces, domain.ErrInvalidAmount)
		}

		if account.Balance.Sub(args.Amount).IsNegative() && !config.EnableNegativeBalance {
			return fmt.Errorf("balance %s, requested %s: %w",
				account.Balance, args.Amount, domain.ErrInsufficientFunds)
		}

		if _, adjErr := accRepo.AdjustBalance(c, account.ID, args.Amount.Neg()); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		var transErr error
		trans, transErr = txRepo.Create(c, repoargs.TransactionCreate{
			GuildID:       account.GuildID,
			FromAccountID: &account.ID,
			Amount:        args.Amount,
			Type:          domain.TransactionTypeWithdraw,
			Reason:        args.Reason,
			CreatedBy:     args.CreatedBy,
		})
		return transErr //nolint:wrapcheck
	})

	s.audit.record(entry, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("withdraw from `%s`: %w", args.AccountID, txErr)
	}
	return trans, nil
}

type TransferArgs struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Reason        string
	CreatedBy     string
}

// Transfer перевод между двумя счетами одной гильдии. Предусловия проверяются строго в порядке
// спецификации операции (самоперевод, существование, активность, min/max, дневной лимит,
// достаточность средств) с остановкой на первом же провале. Дебет и кредит с записью в журнал -
// одна транзакция базы: состояние "списано, но не зачислено" не наблюдаемо ни при сбое,
// ни при конкурентном чтении.
func (s *LedgerService) Transfer(ctx context.Context, args TransferArgs) (*domain.Transaction, error) {
	entry := auditEntry{
		Operation: "transfer",
		Actor:     args.CreatedBy,
		From:      args.FromAccountID,
		To:        args.ToAccountID,
		Amount:    args.Amount,
	}

	if args.FromAccountID == args.ToAccountID {
		err := fmt.Errorf("account `%s`: %w", args.FromAccountID, domain.ErrSelfTransfer)
		s.audit.record(entry, err)
		return nil, fmt.Errorf("transfer: %w", err)
	}
	if !args.Amount.IsPositive() {
		err := fmt.Errorf("non-positive amount %s: %w", args.Amount, domain.ErrInvalidAmount)
		s.audit.record(entry, err)
		return nil, fmt.Errorf("transfer: %w", err)
	}

	release, lockErr := s.locks.Lock(ctx, args.FromAccountID, args.ToAccountID)
	if lockErr != nil {
		s.audit.record(entry, lockErr)
		return nil, fmt.Errorf("transfer `%s` -> `%s`: %w", args.FromAccountID, args.ToAccountID, lockErr)
	}
	defer release()

	var trans *domain.Transaction
	txErr := s.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		accRepo, txRepo, cfgRepo, reposErr := ledgerRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		from, fromErr := getMutableAccount(c, accRepo, args.FromAccountID)
		if fromErr != nil {
			return fromErr
		}
		to, toErr := getMutableAccount(c, accRepo, args.ToAccountID)
		if toErr != nil {
			return toErr
		}

		if from.GuildID != to.GuildID {
			return fmt.Errorf("guilds %d and %d: %w", from.GuildID, to.GuildID, domain.ErrGuildMismatch)
		}

		config, cfgErr := cfgRepo.GetOrCreateDefault(c, from.GuildID)
		if cfgErr != nil {
			return cfgErr //nolint:wrapcheck
		}

		if !domain.FitsPrecision(args.Amount, config.DecimalPlaces) {
			return fmt.Errorf("amount precision exceeds %d places: %w", config.DecimalPlaces, domain.ErrInvalidAmount)
		}
		if args.Amount.LessThan(config.MinTransferAmount) || args.Amount.GreaterThan(config.MaxTransferAmount) {
			return fmt.Errorf("amount %s not in [%s, %s]: %w",
				args.Amount, config.MinTransferAmount, config.MaxTransferAmount, domain.ErrAmountOutOfRange)
		}

		// дневной лимит считается по журналу транзакций за текущие UTC сутки,
		// отдельного мутабельного счетчика нет
		sentToday, sumErr := txRepo.OutgoingTransferSumSince(c, from.ID, utcMidnight(time.Now()))
		if sumErr != nil {
			return sumErr //nolint:wrapcheck
		}
		if sentToday.Add(args.Amount).GreaterThan(config.DailyTransferLimit) {
			return fmt.Errorf("sent today %s, limit %s: %w",
				sentToday, config.DailyTransferLimit, domain.ErrDailyLimitExceeded)
		}

		if from.Balance.Sub(args.Amount).IsNegative() && !config.EnableNegativeBalance {
			return fmt.Errorf("balance %s, requested %s: %w",
				from.Balance, args.Amount, domain.ErrInsufficientFunds)
		}

		if _, adjErr := accRepo.AdjustBalance(c, from.ID, args.Amount.Neg()); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}
		if _, adjErr := accRepo.AdjustBalance(c, to.ID, args.Amount); adjErr != nil {
			return adjErr //nolint:wrapcheck
		}

		var transErr error
		trans, transErr = txRepo.Create(c, repoargs.TransactionCreate{
			GuildID:       from.GuildID,
			FromAccountID: &from.ID,
			ToAccountID:   &to.ID,
			Amount:        args.Amount,
			Type:          domain.TransactionTypeTransfer,
			Reason:        args.Reason,
			CreatedBy:     args.CreatedBy,
		})
		return transErr //nolint:wrapcheck
	})

	s.audit.record(entry, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("transfer `%s` -> `%s`: %w", args.FromAccountID, args.ToAccountID, txErr)
	}
	return trans, nil
}

// DeactivateAccount деактивирует счет. Счета никогда не удаляются физически, чтобы не рвать
// ссылочную целостность истории транзакций.
func (s *LedgerService) DeactivateAccount(ctx context.Context, accountID, actor string) (*domain.Account, error) {
	return s.setAccountFlag(ctx, "deactivate_account", accountID, actor, func(c context.Context, accRepo AccountRepository) (*domain.Account, error) {
		return accRepo.SetActive(c, accountID, false)
	})
}

func (s *LedgerService) ReactivateAccount(ctx context.Context, accountID, actor string) (*domain.Account, error) {
	return s.setAccountFlag(ctx, "reactivate_account", accountID, actor, func(c context.Context, accRepo AccountRepository) (*domain.Account, error) {
		return accRepo.SetActive(c, accountID, true)
	})
}

// UnfreezeAccount снимает флаг integrity-заморозки после ручной сверки.
func (s *LedgerService) UnfreezeAccount(ctx context.Context, accountID, actor string) (*domain.Account, error) {
	return s.setAccountFlag(ctx, "unfreeze_account", accountID, actor, func(c context.Context, accRepo AccountRepository) (*domain.Account, error) {
		return accRepo.SetFrozen(c, accountID, false)
	})
}

func (s *LedgerService) setAccountFlag(
	ctx context.Context,
	operation string,
	accountID string,
	actor string,
	mutate func(context.Context, AccountRepository) (*domain.Account, error),
) (*domain.Account, error) {
	entry := auditEntry{Operation: operation, Actor: actor, To: accountID}

	release, lockErr := s.locks.Lock(ctx, accountID)
	if lockErr != nil {
		s.audit.record(entry, lockErr)
		return nil, fmt.Errorf("%s `%s`: %w", operation, accountID, lockErr)
	}
	defer release()

	var account *domain.Account
	txErr := s.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		accRepo, repoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var mutateErr error
		account, mutateErr = mutate(c, accRepo)
		if errors.Is(mutateErr, domain.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
		}
		return mutateErr
	})

	s.audit.record(entry, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("%s `%s`: %w", operation, accountID, txErr)
	}
	return account, nil
}

// VerifyAccount сверяет баланс счета со знаковой суммой его транзакций. При расхождении счет
// замораживается (заморозка коммитится) и возвращается *domain.IntegrityError с обоими
// значениями; баланс никогда не правится автоматически.
func (s *LedgerService) VerifyAccount(ctx context.Context, accountID, actor string) error {
	entry := auditEntry{Operation: "verify_account", Actor: actor, To: accountID}

	release, lockErr := s.locks.Lock(ctx, accountID)
	if lockErr != nil {
		s.audit.record(entry, lockErr)
		return fmt.Errorf("verifying account `%s`: %w", accountID, lockErr)
	}
	defer release()

	var integrityErr error
	txErr := s.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		accRepo, txRepo, _, reposErr := ledgerRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		account, accErr := accRepo.GetForUpdate(c, accountID)
		if accErr != nil {
			if errors.Is(accErr, domain.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
			}
			return accErr //nolint:wrapcheck
		}

		ledgerSum, sumErr := txRepo.SignedSum(c, accountID)
		if sumErr != nil {
			return sumErr //nolint:wrapcheck
		}

		if !account.Balance.Equal(ledgerSum) {
			// заморозка должна закоммититься, поэтому ошибка сверки не возвращается из fn
			if _, frzErr := accRepo.SetFrozen(c, accountID, true); frzErr != nil {
				return frzErr //nolint:wrapcheck
			}
			integrityErr = &domain.IntegrityError{
				AccountID: accountID,
				Balance:   account.Balance,
				LedgerSum: ledgerSum,
			}
		}
		return nil
	})

	if txErr != nil {
		s.audit.record(entry, txErr)
		return fmt.Errorf("verifying account `%s`: %w", accountID, txErr)
	}
	s.audit.record(entry, integrityErr)
	if integrityErr != nil {
		return fmt.Errorf("verifying account `%s`: %w", accountID, integrityErr)
	}
	return nil
}

// getMutableAccount достает счет под row-level блокировкой и проверяет, что он принимает
// новые операции: активен и не заморожен.
func getMutableAccount(ctx context.Context, accRepo AccountRepository, accountID string) (*domain.Account, error) {
	account, err := accRepo.GetForUpdate(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
		}
		return nil, err //nolint:wrapcheck
	}
	if !account.Active {
		return nil, fmt.Errorf("%w: %s", domain.ErrInactiveAccount, accountID)
	}
	if account.Frozen {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountFrozen, accountID)
	}
	return account, nil
}

// ledgerRepos достает из транзакции все три репозитория леджера.
func ledgerRepos(tx uow.TX) (AccountRepository, TransactionRepository, CurrencyConfigRepository, error) {
	accRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, nil, nil, accErr //nolint:wrapcheck
	}
	txRepo, txErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if txErr != nil {
		return nil, nil, nil, txErr //nolint:wrapcheck
	}
	cfgRepo, cfgErr := uow.GetAs[CurrencyConfigRepository](tx, uow.RepositoryName(repoargs.CurrencyConfigRepoName))
	if cfgErr != nil {
		return nil, nil, nil, cfgErr //nolint:wrapcheck
	}
	return accRepo, txRepo, cfgRepo, nil
}

// utcMidnight возвращает начало текущих UTC суток.
func utcMidnight(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
