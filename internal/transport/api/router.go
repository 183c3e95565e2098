package api

import (
	"time"

	"github.com/fsdevblog/guild-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	AccountsRoute            = "/accounts"
	AccountRoute             = "/accounts/:id"
	AccountBalanceRoute      = "/accounts/:id/balance"
	AccountTransactionsRoute = "/accounts/:id/transactions"
	AccountDepositRoute      = "/accounts/:id/deposit"
	AccountWithdrawRoute     = "/accounts/:id/withdraw"
	AccountRewardRoute       = "/accounts/:id/reward"
	AccountDeactivateRoute   = "/accounts/:id/deactivate"
	AccountReactivateRoute   = "/accounts/:id/reactivate"
	AccountUnfreezeRoute     = "/accounts/:id/unfreeze"
	AccountVerifyRoute       = "/accounts/:id/verify"
	TransferRoute            = "/transfer"
	GuildAccountsRoute       = "/guilds/:guild_id/accounts"
	GuildStatisticsRoute     = "/guilds/:guild_id/statistics"
	GuildAuditRoute          = "/guilds/:guild_id/audit"
	GuildConfigRoute         = "/guilds/:guild_id/config"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	LedgerService   LedgerServicer
	QueryService    QueryServicer
	CurrencyService CurrencyServicer
	AdminJWTSecret  []byte
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	ledgerHandler := NewLedgerHandler(args.LedgerService)
	queryHandler := NewQueryHandler(args.QueryService)
	configHandler := NewConfigHandler(args.CurrencyService)

	api := r.Group(RouteGroup)

	// открытые read-only роуты: баланс, история, статистика и display-настройки валюты
	api.GET(AccountRoute, queryHandler.Account)
	api.GET(AccountBalanceRoute, queryHandler.Balance)
	api.GET(AccountTransactionsRoute, queryHandler.Transactions)
	api.GET(GuildAccountsRoute, queryHandler.GuildAccounts)
	api.GET(GuildStatisticsRoute, queryHandler.Statistics)
	api.GET(GuildConfigRoute, configHandler.Show)

	api.Use(middlewares.AuthRequired(args.AdminJWTSecret))
	// ниже все роуты группы требуют авторизованного актора.
	api.POST(AccountsRoute, ledgerHandler.CreateAccount)
	api.POST(AccountDepositRoute, ledgerHandler.Deposit)
	api.POST(AccountWithdrawRoute, ledgerHandler.Withdraw)
	api.POST(AccountRewardRoute, ledgerHandler.Reward)
	api.POST(TransferRoute, ledgerHandler.Transfer)

	api.POST(AccountDeactivateRoute, ledgerHandler.Deactivate)
	api.POST(AccountReactivateRoute, ledgerHandler.Reactivate)
	api.POST(AccountUnfreezeRoute, ledgerHandler.Unfreeze)
	api.POST(AccountVerifyRoute, ledgerHandler.Verify)

	api.GET(GuildAuditRoute, queryHandler.Audit)
	api.PATCH(GuildConfigRoute, configHandler.Update)

	return r
}
