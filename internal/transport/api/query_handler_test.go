package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/logger"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/internal/service"
	"github.com/fsdevblog/guild-ledger/internal/transport/api/mocks"
	"github.com/fsdevblog/guild-ledger/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type QueryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockQueryService *mocks.MockQueryServicer
}

func TestQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlerTestSuite))
}

func (s *QueryHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockQueryService = mocks.NewMockQueryServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:         logger.New(io.Discard),
		QueryService:   s.mockQueryService,
		AdminJWTSecret: []byte("super secret key"),
	})
}

func (s *QueryHandlerTestSuite) get(url string) *http.Response {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    url,
	})
	s.Require().NoError(err)
	return res
}

func (s *QueryHandlerTestSuite) TestBalance() {
	s.mockQueryService.EXPECT().
		GetBalance(gomock.Any(), "user_1_alice").
		Return(decimal.NewFromFloat(123.45), nil)

	res := s.get(RouteGroup + "/accounts/user_1_alice/balance")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)

	var body BalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("user_1_alice", body.AccountID)
	s.Equal("123.45", body.Balance)
}

func (s *QueryHandlerTestSuite) TestBalance_NotFound() {
	s.mockQueryService.EXPECT().
		GetBalance(gomock.Any(), "user_1_ghost").
		Return(decimal.Zero, fmt.Errorf("%w: user_1_ghost", domain.ErrAccountNotFound))

	res := s.get(RouteGroup + "/accounts/user_1_ghost/balance")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *QueryHandlerTestSuite) TestTransactions() {
	fromID := "user_1_alice"
	toID := "user_1_bob"
	transferType := domain.TransactionTypeTransfer

	s.mockQueryService.EXPECT().
		GetTransactionHistory(gomock.Any(), "user_1_alice", uint(5), &transferType).
		Return([]domain.Transaction{
			{
				ID:            7,
				FromAccountID: &fromID,
				ToAccountID:   &toID,
				Amount:        decimal.NewFromInt(30),
				Type:          transferType,
			},
		}, nil)

	res := s.get(RouteGroup + "/accounts/user_1_alice/transactions?limit=5&type=transfer")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)

	var body []TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal(int64(7), body[0].ID)
}

func (s *QueryHandlerTestSuite) TestTransactions_InvalidType() {
	res := s.get(RouteGroup + "/accounts/user_1_alice/transactions?type=donation")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *QueryHandlerTestSuite) TestGuildAccounts() {
	userType := domain.AccountTypeUser

	s.mockQueryService.EXPECT().
		GetGuildAccounts(gomock.Any(), int64(42), repoargs.AccountFilter{
			AccountType: &userType,
			ActiveOnly:  true,
		}).
		Return([]domain.Account{
			{ID: "user_42_alice", GuildID: 42, AccountType: userType, OwnerRef: "alice", Active: true},
		}, nil)

	res := s.get(RouteGroup + "/guilds/42/accounts?type=user&active_only=true")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *QueryHandlerTestSuite) TestGuildAccounts_InvalidGuildID() {
	for _, url := range []string{
		RouteGroup + "/guilds/abc/accounts",
		RouteGroup + "/guilds/-1/accounts",
	} {
		res := s.get(url)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	}
}

func (s *QueryHandlerTestSuite) TestStatistics() {
	s.mockQueryService.EXPECT().
		GetEconomyStatistics(gomock.Any(), int64(42)).
		Return(&service.EconomyStatistics{
			GuildID:        42,
			TotalAccounts:  3,
			ActiveAccounts: 2,
			TotalBalance:   decimal.NewFromInt(1000),
			Transactions: []repoargs.TypeAggregation{
				{Type: domain.TransactionTypeTransfer, Count: 5, Volume: decimal.NewFromInt(250)},
			},
			TopHolders: []repoargs.TopHolder{
				{
					AccountID:   "user_42_alice",
					AccountType: domain.AccountTypeUser,
					OwnerRef:    "alice",
					Balance:     decimal.NewFromInt(900),
				},
			},
		}, nil)

	res := s.get(RouteGroup + "/guilds/42/statistics")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)

	var body StatisticsResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(int64(42), body.GuildID)
	s.Equal(int64(3), body.TotalAccounts)
	s.Equal("1000", body.TotalBalance)
	s.Require().Len(body.TopHolders, 1)
	s.Equal("user_42_alice", body.TopHolders[0].AccountID)
}

func (s *QueryHandlerTestSuite) TestAudit_RequiresAuth() {
	res := s.get(RouteGroup + "/guilds/42/audit")
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	// аудит-лог закрыт от неавторизованных
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
