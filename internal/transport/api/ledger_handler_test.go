package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/logger"
	"github.com/fsdevblog/guild-ledger/internal/service"
	"github.com/fsdevblog/guild-ledger/internal/transport/api/mocks"
	"github.com/fsdevblog/guild-ledger/internal/transport/api/testutils"
	"github.com/fsdevblog/guild-ledger/internal/transport/api/tokens"
	"github.com/fsdevblog/guild-ledger/pkg/keylock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *mocks.MockLedgerServicer
	jwtSecret         []byte
	adminToken        string
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockLedgerService = mocks.NewMockLedgerServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	adminToken, tokenErr := tokens.GenerateActorJWT("admin", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.adminToken = adminToken

	s.router = New(RouterArgs{
		Logger:         logger.New(io.Discard),
		LedgerService:  s.mockLedgerService,
		AdminJWTSecret: s.jwtSecret,
	})
}

func (s *LedgerHandlerTestSuite) postJSON(url string, payload []byte, token string) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    url,
		Body:   bytes.NewReader(payload),
	}
	reqOpts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithBearerToken(token))
	}
	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	return res
}

func (s *LedgerHandlerTestSuite) TestCreateAccount() {
	validPayload := []byte(`{"guild_id": 42, "account_type": "user", "owner_ref": "alice"}`)
	duplicatePayload := []byte(`{"guild_id": 42, "account_type": "user", "owner_ref": "bob"}`)

	s.mockLedgerService.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.CreateAccountArgs) (*domain.Account, error) {
			s.Equal(int64(42), args.GuildID)
			s.Equal(domain.AccountTypeUser, args.AccountType)
			s.Equal("alice", args.OwnerRef)
			// авторизованный актор попадает в created_by
			s.Equal("admin", args.CreatedBy)
			return &domain.Account{
				ID:          "user_42_alice",
				GuildID:     42,
				AccountType: domain.AccountTypeUser,
				OwnerRef:    "alice",
				Balance:     decimal.Zero,
				Active:      true,
			}, nil
		}).Times(1)
	s.mockLedgerService.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.CreateAccountArgs) (*domain.Account, error) {
			s.Equal("bob", args.OwnerRef)
			return nil, domain.NewDuplicateAccountError(&domain.Account{ID: "user_42_bob", GuildID: 42})
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, jwtToken: s.adminToken, wantStatus: http.StatusCreated},
		{name: "duplicate", payload: duplicatePayload, jwtToken: s.adminToken, wantStatus: http.StatusConflict},
		{name: "not authorized", payload: validPayload, wantStatus: http.StatusUnauthorized},
		{
			name:       "missing guild id",
			payload:    []byte(`{"account_type": "user", "owner_ref": "alice"}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.postJSON(RouteGroup+AccountsRoute, t.payload, t.jwtToken)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *LedgerHandlerTestSuite) TestTransfer() {
	okPayload := []byte(`{"from_account_id": "user_1_alice", "to_account_id": "user_1_bob", "amount": "30"}`)

	transferCall := func(result *domain.Transaction, err error) {
		s.mockLedgerService.EXPECT().
			Transfer(gomock.Any(), gomock.Any()).
			Return(result, err).Times(1)
	}

	fromID := "user_1_alice"
	toID := "user_1_bob"

	cases := []struct {
		name       string
		setup      func()
		wantStatus int
	}{
		{
			name: "all ok",
			setup: func() {
				transferCall(&domain.Transaction{
					ID:            1,
					FromAccountID: &fromID,
					ToAccountID:   &toID,
					Amount:        decimal.NewFromInt(30),
					Type:          domain.TransactionTypeTransfer,
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "insufficient funds",
			setup: func() {
				transferCall(nil, fmt.Errorf("transfer: %w", domain.ErrInsufficientFunds))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "daily limit",
			setup: func() {
				transferCall(nil, fmt.Errorf("transfer: %w", domain.ErrDailyLimitExceeded))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "self transfer",
			setup: func() {
				transferCall(nil, fmt.Errorf("transfer: %w", domain.ErrSelfTransfer))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "recipient not found",
			setup: func() {
				transferCall(nil, fmt.Errorf("transfer: %w", domain.ErrAccountNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "lock timeout",
			setup: func() {
				transferCall(nil, fmt.Errorf("transfer: %w", keylock.ErrLockTimeout))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			t.setup()
			res := s.postJSON(RouteGroup+TransferRoute, okPayload, s.adminToken)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusServiceUnavailable {
				// таймаут блокировки безопасно повторить
				s.Equal("1", res.Header.Get("Retry-After"))
			}
		})
	}
}

func (s *LedgerHandlerTestSuite) TestDeposit() {
	accountID := "user_1_alice"

	s.mockLedgerService.EXPECT().
		Deposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.MovementArgs) (*domain.Transaction, error) {
			s.Equal(accountID, args.AccountID)
			s.True(decimal.NewFromInt(25).Equal(args.Amount))
			s.Equal("event prize", args.Reason)
			return &domain.Transaction{
				ID:          1,
				ToAccountID: &accountID,
				Amount:      args.Amount,
				Type:        domain.TransactionTypeDeposit,
			}, nil
		})

	res := s.postJSON(
		RouteGroup+"/accounts/"+accountID+"/deposit",
		[]byte(`{"amount": "25", "reason": "event prize"}`),
		s.adminToken,
	)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusCreated, res.StatusCode)
}

func (s *LedgerHandlerTestSuite) TestWithdraw_FrozenAccount() {
	s.mockLedgerService.EXPECT().
		Withdraw(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("withdraw: %w", domain.ErrAccountFrozen))

	res := s.postJSON(
		RouteGroup+"/accounts/user_1_alice/withdraw",
		[]byte(`{"amount": "10"}`),
		s.adminToken,
	)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusConflict, res.StatusCode)
}

func (s *LedgerHandlerTestSuite) TestVerify() {
	s.mockLedgerService.EXPECT().
		VerifyAccount(gomock.Any(), "user_1_alice", "admin").
		Return(nil)
	s.mockLedgerService.EXPECT().
		VerifyAccount(gomock.Any(), "user_1_bob", "admin").
		Return(fmt.Errorf("verify: %w", &domain.IntegrityError{
			AccountID: "user_1_bob",
			Balance:   decimal.NewFromInt(100),
			LedgerSum: decimal.NewFromInt(90),
		}))

	cases := []struct {
		name       string
		accountID  string
		wantStatus int
	}{
		{name: "consistent", accountID: "user_1_alice", wantStatus: http.StatusOK},
		{name: "integrity violation", accountID: "user_1_bob", wantStatus: http.StatusConflict},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.postJSON(RouteGroup+"/accounts/"+t.accountID+"/verify", nil, s.adminToken)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *LedgerHandlerTestSuite) TestDeactivate() {
	s.mockLedgerService.EXPECT().
		DeactivateAccount(gomock.Any(), "user_1_alice", "admin").
		Return(&domain.Account{
			ID:          "user_1_alice",
			GuildID:     1,
			AccountType: domain.AccountTypeUser,
			OwnerRef:    "alice",
			Balance:     decimal.NewFromInt(10),
			Active:      false,
		}, nil)

	res := s.postJSON(RouteGroup+"/accounts/user_1_alice/deactivate", nil, s.adminToken)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)
}
