package service

import (
	"testing"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/internal/service/mocks"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
	uowmocks "github.com/fsdevblog/guild-ledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUOW     *uowmocks.MockUOW
	mockAccRepo *mocks.MockAccountRepository
	mockTxRepo  *mocks.MockTransactionRepository
	service     *QueryService
}

func TestQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}

func (s *QueryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockAccRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	// read-сторона работает поверх пула, репозитории выдаются при инициализации
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccRepo, nil)
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil)

	var err error
	s.service, err = NewQueryService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *QueryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *QueryServiceTestSuite) TestGetBalance() {
	account := &domain.Account{
		ID:      "user_1_alice",
		GuildID: 1,
		Balance: decimal.NewFromFloat(123.45),
		Active:  true,
	}

	s.mockAccRepo.EXPECT().Get(gomock.Any(), account.ID).Return(account, nil)

	balance, err := s.service.GetBalance(s.T().Context(), account.ID)
	s.Require().NoError(err)
	s.True(account.Balance.Equal(balance))
}

func (s *QueryServiceTestSuite) TestGetBalance_NotFound() {
	s.mockAccRepo.EXPECT().Get(gomock.Any(), "user_1_ghost").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.GetBalance(s.T().Context(), "user_1_ghost")
	s.Require().ErrorIs(err, domain.ErrAccountNotFound)
}

func (s *QueryServiceTestSuite) TestGetTransactionHistory_LimitClamp() {
	cases := []struct {
		name      string
		limit     uint
		wantLimit uint
	}{
		{name: "zero replaced by default", limit: 0, wantLimit: DefaultQueryLimit},
		{name: "within bounds", limit: 200, wantLimit: 200},
		{name: "capped at max", limit: 5000, wantLimit: MaxQueryLimit},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockTxRepo.EXPECT().
				History(gomock.Any(), repoargs.HistoryQuery{
					AccountID: "user_1_alice",
					Limit:     t.wantLimit,
				}).
				Return([]domain.Transaction{}, nil)

			_, err := s.service.GetTransactionHistory(s.T().Context(), "user_1_alice", t.limit, nil)
			s.Require().NoError(err)
		})
	}
}

func (s *QueryServiceTestSuite) TestGetAuditLog() {
	transferType := domain.TransactionTypeTransfer
	userID := "42"

	s.mockTxRepo.EXPECT().
		GuildAudit(gomock.Any(), repoargs.AuditQuery{
			GuildID: 1,
			Limit:   DefaultQueryLimit,
			Type:    &transferType,
			UserID:  &userID,
		}).
		Return([]domain.Transaction{{ID: 7, Type: transferType}}, nil)

	transactions, err := s.service.GetAuditLog(s.T().Context(), 1, 0, &transferType, &userID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(int64(7), transactions[0].ID)
}

func (s *QueryServiceTestSuite) TestGetEconomyStatistics() {
	guildID := int64(1)

	s.mockAccRepo.EXPECT().GuildStats(gomock.Any(), guildID).
		Return(&repoargs.GuildAccountStats{
			TotalAccounts:  5,
			ActiveAccounts: 4,
			TotalBalance:   decimal.NewFromInt(1000),
		}, nil)
	s.mockTxRepo.EXPECT().CountByType(gomock.Any(), guildID).
		Return([]repoargs.TypeAggregation{
			{Type: domain.TransactionTypeTransfer, Count: 10, Volume: decimal.NewFromInt(500)},
			{Type: domain.TransactionTypeDeposit, Count: 3, Volume: decimal.NewFromInt(700)},
		}, nil)
	s.mockAccRepo.EXPECT().TopHolders(gomock.Any(), guildID, topHoldersLimit).
		Return([]repoargs.TopHolder{
			{AccountID: "user_1_alice", Balance: decimal.NewFromInt(900)},
		}, nil)

	stats, err := s.service.GetEconomyStatistics(s.T().Context(), guildID)
	s.Require().NoError(err)

	s.Equal(int64(5), stats.TotalAccounts)
	s.Equal(int64(4), stats.ActiveAccounts)
	s.True(stats.TotalBalance.Equal(decimal.NewFromInt(1000)))
	s.Len(stats.Transactions, 2)
	s.Len(stats.TopHolders, 1)
}
