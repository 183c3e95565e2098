package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/keylock"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// fakeStore in-memory хранилище для сценарных тестов: состояние целиком в памяти,
// Do эмулирует транзакционность снапшотом с восстановлением при ошибке.
type fakeStore struct {
	mu           sync.Mutex
	accounts     map[string]domain.Account
	transactions []domain.Transaction
	configs      map[int64]domain.CurrencyConfig
	nextTxID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]domain.Account),
		configs:  make(map[int64]domain.CurrencyConfig),
	}
}

func (f *fakeStore) snapshot() *fakeStore {
	snap := newFakeStore()
	for id, account := range f.accounts {
		snap.accounts[id] = account
	}
	for guildID, config := range f.configs {
		snap.configs[guildID] = config
	}
	snap.transactions = append([]domain.Transaction(nil), f.transactions...)
	snap.nextTxID = f.nextTxID
	return snap
}

func (f *fakeStore) restore(snap *fakeStore) {
	f.accounts = snap.accounts
	f.configs = snap.configs
	f.transactions = snap.transactions
	f.nextTxID = snap.nextTxID
}

type fakeUOW struct {
	store *fakeStore
}

type fakeTX struct {
	store *fakeStore
}

func (u *fakeUOW) Register(uow.RepositoryName, uow.RepositoryFactory) error { return nil }

func (u *fakeUOW) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx, &fakeTX{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *fakeUOW) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return (&fakeTX{store: u.store}).Get(name)
}

func (t *fakeTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.AccountRepoName:
		return &fakeAccountRepo{store: t.store}, nil
	case repoargs.TransactionRepoName:
		return &fakeTransactionRepo{store: t.store}, nil
	case repoargs.CurrencyConfigRepoName:
		return &fakeCurrencyConfigRepo{store: t.store}, nil
	}
	return nil, fmt.Errorf("unknown repository %s", name)
}

type fakeAccountRepo struct {
	store *fakeStore
}

func (r *fakeAccountRepo) Create(_ context.Context, args repoargs.AccountCreate) (*domain.Account, error) {
	if _, exists := r.store.accounts[args.ID]; exists {
		return nil, domain.ErrDuplicateKey
	}
	account := domain.Account{
		ID:          args.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		GuildID:     args.GuildID,
		AccountType: args.AccountType,
		OwnerRef:    args.OwnerRef,
		Balance:     args.Balance,
		Active:      true,
	}
	r.store.accounts[args.ID] = account
	return &account, nil
}

func (r *fakeAccountRepo) Get(_ context.Context, accountID string) (*domain.Account, error) {
	account, exists := r.store.accounts[accountID]
	if !exists {
		return nil, domain.ErrRecordNotFound
	}
	return &account, nil
}

func (r *fakeAccountRepo) GetForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.Get(ctx, accountID)
}

func (r *fakeAccountRepo) FindByOwner(
	_ context.Context,
	guildID int64,
	accountType domain.AccountType,
	ownerRef string,
) (*domain.Account, error) {
	for _, account := range r.store.accounts {
		if account.GuildID == guildID && account.AccountType == accountType && account.OwnerRef == ownerRef {
			return &account, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *fakeAccountRepo) ListByGuild(
	_ context.Context,
	guildID int64,
	filter repoargs.AccountFilter,
) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, account := range r.store.accounts {
		if account.GuildID != guildID {
			continue
		}
		if filter.AccountType != nil && account.AccountType != *filter.AccountType {
			continue
		}
		if filter.ActiveOnly && !account.Active {
			continue
		}
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *fakeAccountRepo) AdjustBalance(
	_ context.Context,
	accountID string,
	delta decimal.Decimal,
) (*domain.Account, error) {
	account, exists := r.store.accounts[accountID]
	if !exists {
		return nil, domain.ErrRecordNotFound
	}
	account.Balance = account.Balance.Add(delta)
	account.UpdatedAt = time.Now()
	r.store.accounts[accountID] = account
	return &account, nil
}

func (r *fakeAccountRepo) SetActive(_ context.Context, accountID string, active bool) (*domain.Account, error) {
	return r.setFlag(accountID, func(account *domain.Account) { account.Active = active })
}

func (r *fakeAccountRepo) SetFrozen(_ context.Context, accountID string, frozen bool) (*domain.Account, error) {
	return r.setFlag(accountID, func(account *domain.Account) { account.Frozen = frozen })
}

func (r *fakeAccountRepo) setFlag(accountID string, mutate func(*domain.Account)) (*domain.Account, error) {
	account, exists := r.store.accounts[accountID]
	if !exists {
		return nil, domain.ErrRecordNotFound
	}
	mutate(&account)
	account.UpdatedAt = time.Now()
	r.store.accounts[accountID] = account
	return &account, nil
}

func (r *fakeAccountRepo) GuildStats(_ context.Context, guildID int64) (*repoargs.GuildAccountStats, error) {
	stats := repoargs.GuildAccountStats{TotalBalance: decimal.Zero}
	for _, account := range r.store.accounts {
		if account.GuildID != guildID {
			continue
		}
		stats.TotalAccounts++
		if account.Active {
			stats.ActiveAccounts++
		}
		stats.TotalBalance = stats.TotalBalance.Add(account.Balance)
	}
	return &stats, nil
}

func (r *fakeAccountRepo) TopHolders(
	ctx context.Context,
	guildID int64,
	limit uint,
) ([]repoargs.TopHolder, error) {
	accounts, _ := r.ListByGuild(ctx, guildID, repoargs.AccountFilter{})
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Balance.GreaterThan(accounts[j].Balance) })
	holders := make([]repoargs.TopHolder, 0, limit)
	for _, account := range accounts {
		if uint(len(holders)) == limit {
			break
		}
		holders = append(holders, repoargs.TopHolder{
			AccountID:   account.ID,
			AccountType: account.AccountType,
			OwnerRef:    account.OwnerRef,
			Balance:     account.Balance,
		})
	}
	return holders, nil
}

type fakeTransactionRepo struct {
	store *fakeStore
}

func (r *fakeTransactionRepo) Create(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
	r.store.nextTxID++
	trans := domain.Transaction{
		ID:            r.store.nextTxID,
		CreatedAt:     time.Now(),
		GuildID:       args.GuildID,
		FromAccountID: args.FromAccountID,
		ToAccountID:   args.ToAccountID,
		Amount:        args.Amount,
		Type:          args.Type,
		Reason:        args.Reason,
		CreatedBy:     args.CreatedBy,
	}
	r.store.transactions = append(r.store.transactions, trans)
	return &trans, nil
}

func (r *fakeTransactionRepo) History(_ context.Context, q repoargs.HistoryQuery) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for i := len(r.store.transactions) - 1; i >= 0 && uint(len(transactions)) < q.Limit; i-- {
		trans := r.store.transactions[i]
		touches := (trans.FromAccountID != nil && *trans.FromAccountID == q.AccountID) ||
			(trans.ToAccountID != nil && *trans.ToAccountID == q.AccountID)
		if !touches {
			continue
		}
		if q.Type != nil && trans.Type != *q.Type {
			continue
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

func (r *fakeTransactionRepo) GuildAudit(_ context.Context, q repoargs.AuditQuery) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for i := len(r.store.transactions) - 1; i >= 0 && uint(len(transactions)) < q.Limit; i-- {
		trans := r.store.transactions[i]
		if trans.GuildID != q.GuildID {
			continue
		}
		if q.Type != nil && trans.Type != *q.Type {
			continue
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

func (r *fakeTransactionRepo) OutgoingTransferSumSince(
	_ context.Context,
	accountID string,
	since time.Time,
) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, trans := range r.store.transactions {
		if trans.Type != domain.TransactionTypeTransfer {
			continue
		}
		if trans.FromAccountID == nil || *trans.FromAccountID != accountID {
			continue
		}
		if trans.CreatedAt.Before(since) {
			continue
		}
		sum = sum.Add(trans.Amount)
	}
	return sum, nil
}

func (r *fakeTransactionRepo) SignedSum(_ context.Context, accountID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, trans := range r.store.transactions {
		if trans.ToAccountID != nil && *trans.ToAccountID == accountID {
			sum = sum.Add(trans.Amount)
		}
		if trans.FromAccountID != nil && *trans.FromAccountID == accountID {
			sum = sum.Sub(trans.Amount)
		}
	}
	return sum, nil
}

func (r *fakeTransactionRepo) CountByType(_ context.Context, guildID int64) ([]repoargs.TypeAggregation, error) {
	byType := make(map[domain.TransactionType]*repoargs.TypeAggregation)
	for _, trans := range r.store.transactions {
		if trans.GuildID != guildID {
			continue
		}
		agg, exists := byType[trans.Type]
		if !exists {
			agg = &repoargs.TypeAggregation{Type: trans.Type, Volume: decimal.Zero}
			byType[trans.Type] = agg
		}
		agg.Count++
		agg.Volume = agg.Volume.Add(trans.Amount)
	}
	aggregations := make([]repoargs.TypeAggregation, 0, len(byType))
	for _, agg := range byType {
		aggregations = append(aggregations, *agg)
	}
	return aggregations, nil
}

type fakeCurrencyConfigRepo struct {
	store *fakeStore
}

func (r *fakeCurrencyConfigRepo) GetOrCreateDefault(_ context.Context, guildID int64) (*domain.CurrencyConfig, error) {
	if config, exists := r.store.configs[guildID]; exists {
		return &config, nil
	}
	config := domain.CurrencyConfig{
		GuildID:            guildID,
		CurrencyName:       "金幣",
		CurrencySymbol:     "💰",
		DecimalPlaces:      2,
		MinTransferAmount:  decimal.NewFromFloat(0.01),
		MaxTransferAmount:  decimal.NewFromInt(1_000_000),
		DailyTransferLimit: decimal.NewFromInt(100_000),
	}
	r.store.configs[guildID] = config
	return &config, nil
}

func (r *fakeCurrencyConfigRepo) Update(
	ctx context.Context,
	guildID int64,
	args repoargs.CurrencyConfigUpdate,
) (*domain.CurrencyConfig, error) {
	config, err := r.GetOrCreateDefault(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if args.CurrencyName != nil {
		config.CurrencyName = *args.CurrencyName
	}
	if args.CurrencySymbol != nil {
		config.CurrencySymbol = *args.CurrencySymbol
	}
	if args.DecimalPlaces != nil {
		config.DecimalPlaces = *args.DecimalPlaces
	}
	if args.MinTransferAmount != nil {
		config.MinTransferAmount = *args.MinTransferAmount
	}
	if args.MaxTransferAmount != nil {
		config.MaxTransferAmount = *args.MaxTransferAmount
	}
	if args.DailyTransferLimit != nil {
		config.DailyTransferLimit = *args.DailyTransferLimit
	}
	if args.EnableNegativeBalance != nil {
		config.EnableNegativeBalance = *args.EnableNegativeBalance
	}
	r.store.configs[guildID] = *config
	return config, nil
}

// LedgerScenariosTestSuite end-to-end сценарии движка поверх in-memory хранилища:
// проверяются сквозные инварианты, а не отдельные вызовы репозиториев.
type LedgerScenariosTestSuite struct {
	suite.Suite
	store   *fakeStore
	service *LedgerService
}

func TestLedgerScenariosSuite(t *testing.T) {
	suite.Run(t, new(LedgerScenariosTestSuite))
}

func (s *LedgerScenariosTestSuite) SetupTest() {
	s.store = newFakeStore()

	auditLog := logrus.New()
	auditLog.SetOutput(io.Discard)

	s.service = NewLedgerService(&fakeUOW{store: s.store}, keylock.New(5*time.Second), NewAuditRecorder(auditLog))
}

func (s *LedgerScenariosTestSuite) createAccount(ownerRef string, balance int64) *domain.Account {
	account, err := s.service.CreateAccount(s.T().Context(), CreateAccountArgs{
		GuildID:        1,
		AccountType:    domain.AccountTypeUser,
		OwnerRef:       ownerRef,
		InitialBalance: decimal.NewFromInt(balance),
		CreatedBy:      "admin",
	})
	s.Require().NoError(err)
	return account
}

func (s *LedgerScenariosTestSuite) balance(accountID string) decimal.Decimal {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	account, exists := s.store.accounts[accountID]
	s.Require().True(exists)
	return account.Balance
}

// guildTotal суммарный баланс гильдии.
func (s *LedgerScenariosTestSuite) guildTotal(guildID int64) decimal.Decimal {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	total := decimal.Zero
	for _, account := range s.store.accounts {
		if account.GuildID == guildID {
			total = total.Add(account.Balance)
		}
	}
	return total
}

func (s *LedgerScenariosTestSuite) TestTransferAndWithdrawFlow() {
	accountA := s.createAccount("alice", 100)
	accountB := s.createAccount("bob", 0)

	minAmount := decimal.NewFromInt(1)
	maxAmount := decimal.NewFromInt(50)
	_, cfgErr := (&fakeCurrencyConfigRepo{store: s.store}).Update(s.T().Context(), 1, repoargs.CurrencyConfigUpdate{
		MinTransferAmount: &minAmount,
		MaxTransferAmount: &maxAmount,
	})
	s.Require().NoError(cfgErr)

	// перевод 30 в границах лимитов
	_, err := s.service.Transfer(s.T().Context(), TransferArgs{
		FromAccountID: accountA.ID,
		ToAccountID:   accountB.ID,
		Amount:        decimal.NewFromInt(30),
		CreatedBy:     "alice",
	})
	s.Require().NoError(err)
	s.True(s.balance(accountA.ID).Equal(decimal.NewFromInt(70)))
	s.True(s.balance(accountB.ID).Equal(decimal.NewFromInt(30)))

	// 80 выше max, баланс не трогается
	_, err = s.service.Transfer(s.T().Context(), TransferArgs{
		FromAccountID: accountA.ID,
		ToAccountID:   accountB.ID,
		Amount:        decimal.NewFromInt(80),
		CreatedBy:     "alice",
	})
	s.Require().ErrorIs(err, domain.ErrAmountOutOfRange)
	s.True(s.balance(accountA.ID).Equal(decimal.NewFromInt(70)))

	// списание в ноль
	_, err = s.service.Withdraw(s.T().Context(), MovementArgs{
		AccountID: accountA.ID,
		Amount:    decimal.NewFromInt(70),
		CreatedBy: "admin",
	})
	s.Require().NoError(err)
	s.True(s.balance(accountA.ID).IsZero())

	// дальше списывать нечего
	_, err = s.service.Withdraw(s.T().Context(), MovementArgs{
		AccountID: accountA.ID,
		Amount:    decimal.NewFromInt(1),
		CreatedBy: "admin",
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *LedgerScenariosTestSuite) TestTransferConservation() {
	accountA := s.createAccount("alice", 500)
	accountB := s.createAccount("bob", 200)
	accountC := s.createAccount("carol", 0)

	totalBefore := s.guildTotal(1)

	transfers := []struct {
		from, to string
		amount   int64
	}{
		{from: accountA.ID, to: accountB.ID, amount: 120},
		{from: accountB.ID, to: accountC.ID, amount: 51},
		{from: accountA.ID, to: accountC.ID, amount: 33},
		{from: accountC.ID, to: accountA.ID, amount: 84},
	}
	for _, t := range transfers {
		_, err := s.service.Transfer(s.T().Context(), TransferArgs{
			FromAccountID: t.from,
			ToAccountID:   t.to,
			Amount:        decimal.NewFromInt(t.amount),
			Reason:        gofakeit.Sentence(3),
			CreatedBy:     "admin",
		})
		s.Require().NoError(err)
	}

	// переводы не создают и не уничтожают деньги
	s.True(totalBefore.Equal(s.guildTotal(1)))
}

func (s *LedgerScenariosTestSuite) TestReconciliation() {
	accountA := s.createAccount("alice", 100)
	accountB := s.createAccount("bob", 0)

	_, err := s.service.Transfer(s.T().Context(), TransferArgs{
		FromAccountID: accountA.ID,
		ToAccountID:   accountB.ID,
		Amount:        decimal.NewFromInt(40),
		CreatedBy:     "alice",
	})
	s.Require().NoError(err)
	_, err = s.service.Withdraw(s.T().Context(), MovementArgs{
		AccountID: accountB.ID,
		Amount:    decimal.NewFromInt(15),
		CreatedBy: "admin",
	})
	s.Require().NoError(err)

	// после любой последовательности операций балансы сходятся с журналом
	s.Require().NoError(s.service.VerifyAccount(s.T().Context(), accountA.ID, "admin"))
	s.Require().NoError(s.service.VerifyAccount(s.T().Context(), accountB.ID, "admin"))

	// портим баланс в обход движка
	s.store.mu.Lock()
	corrupted := s.store.accounts[accountB.ID]
	corrupted.Balance = corrupted.Balance.Add(decimal.NewFromInt(1000))
	s.store.accounts[accountB.ID] = corrupted
	s.store.mu.Unlock()

	verifyErr := s.service.VerifyAccount(s.T().Context(), accountB.ID, "admin")
	s.Require().Error(verifyErr)

	var integrityErr *domain.IntegrityError
	s.Require().ErrorAs(verifyErr, &integrityErr)

	// счет заморожен и отклоняет операции до ручной разморозки
	s.True(s.store.accounts[accountB.ID].Frozen)
	_, err = s.service.Deposit(s.T().Context(), MovementArgs{
		AccountID: accountB.ID,
		Amount:    decimal.NewFromInt(1),
		CreatedBy: "admin",
	})
	s.Require().ErrorIs(err, domain.ErrAccountFrozen)
}

func (s *LedgerScenariosTestSuite) TestRolledBackTransferLeavesNoTrace() {
	accountA := s.createAccount("alice", 10)
	accountB := s.createAccount("bob", 0)

	transactionsBefore := len(s.store.transactions)

	_, err := s.service.Transfer(s.T().Context(), TransferArgs{
		FromAccountID: accountA.ID,
		ToAccountID:   accountB.ID,
		Amount:        decimal.NewFromInt(25),
		CreatedBy:     "alice",
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)

	// отклоненный перевод не оставляет ни записей в журнале, ни частичных списаний
	s.Len(s.store.transactions, transactionsBefore)
	s.True(s.balance(accountA.ID).Equal(decimal.NewFromInt(10)))
	s.True(s.balance(accountB.ID).IsZero())
}

func (s *LedgerScenariosTestSuite) TestConcurrentTransfers() {
	accountA := s.createAccount("alice", 1000)
	accountB := s.createAccount("bob", 1000)

	totalBefore := s.guildTotal(1)

	var eg errgroup.Group
	for i := 0; i < 20; i++ {
		from, to := accountA.ID, accountB.ID
		if i%2 == 1 {
			from, to = to, from
		}
		eg.Go(func() error {
			_, err := s.service.Transfer(context.Background(), TransferArgs{
				FromAccountID: from,
				ToAccountID:   to,
				Amount:        decimal.NewFromInt(7),
				CreatedBy:     "admin",
			})
			return err
		})
	}
	s.Require().NoError(eg.Wait())

	// конкурентные переводы не ломают ни сохранение суммы, ни сверку с журналом
	s.True(totalBefore.Equal(s.guildTotal(1)))
	s.Require().NoError(s.service.VerifyAccount(s.T().Context(), accountA.ID, "admin"))
	s.Require().NoError(s.service.VerifyAccount(s.T().Context(), accountB.ID, "admin"))
}
