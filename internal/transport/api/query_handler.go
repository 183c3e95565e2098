package api

import (
	"context"
	"strconv"

	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
)

// QueryHandler read-only часть API.
type QueryHandler struct {
	svs QueryServicer
}

func NewQueryHandler(svs QueryServicer) *QueryHandler {
	return &QueryHandler{
		svs: svs,
	}
}

// Account GET RouteGroup + AccountRoute.
func (h *QueryHandler) Account(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.GetAccount(reqCtx, c.Param("id"))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// Balance GET RouteGroup + AccountBalanceRoute.
func (h *QueryHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, c.Param("id"))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		AccountID: c.Param("id"),
		Balance:   balance.String(),
	})
}

// Transactions GET RouteGroup + AccountTransactionsRoute.
// Query параметры: limit, type.
func (h *QueryHandler) Transactions(c *gin.Context) {
	transactionType, typeOk := transactionTypeQuery(c)
	if !typeOk {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.GetTransactionHistory(reqCtx, c.Param("id"), limitQuery(c), transactionType)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionListResponse(transactions))
}

// GuildAccounts GET RouteGroup + GuildAccountsRoute.
// Query параметры: type, active_only.
func (h *QueryHandler) GuildAccounts(c *gin.Context) {
	guildID, ok := guildIDParam(c)
	if !ok {
		return
	}

	var filter repoargs.AccountFilter
	if rawType := c.Query("type"); rawType != "" {
		accountType := domain.AccountType(rawType)
		if !accountType.Valid() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid account type"})
			return
		}
		filter.AccountType = &accountType
	}
	filter.ActiveOnly = c.Query("active_only") == "true"

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.svs.GetGuildAccounts(reqCtx, guildID, filter)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	response := make([]AccountResponse, len(accounts))
	for i := range accounts {
		response[i] = newAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, response)
}

// Audit GET RouteGroup + GuildAuditRoute.
// Query параметры: limit, type, user_id.
func (h *QueryHandler) Audit(c *gin.Context) {
	guildID, ok := guildIDParam(c)
	if !ok {
		return
	}
	transactionType, typeOk := transactionTypeQuery(c)
	if !typeOk {
		return
	}

	var userID *string
	if rawUserID := c.Query("user_id"); rawUserID != "" {
		userID = &rawUserID
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.GetAuditLog(reqCtx, guildID, limitQuery(c), transactionType, userID)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionListResponse(transactions))
}

type StatisticsResponse struct {
	GuildID        int64                    `json:"guild_id"`
	TotalAccounts  int64                    `json:"total_accounts"`
	ActiveAccounts int64                    `json:"active_accounts"`
	TotalBalance   string                   `json:"total_balance"`
	Transactions   []TypeAggregationItem    `json:"transactions"`
	TopHolders     []TopHolderResponseItem  `json:"top_holders"`
}

type TypeAggregationItem struct {
	Type   string `json:"type"`
	Count  int64  `json:"count"`
	Volume string `json:"volume"`
}

type TopHolderResponseItem struct {
	AccountID   string `json:"account_id"`
	AccountType string `json:"account_type"`
	OwnerRef    string `json:"owner_ref"`
	Balance     string `json:"balance"`
}

// Statistics GET RouteGroup + GuildStatisticsRoute.
func (h *QueryHandler) Statistics(c *gin.Context) {
	guildID, ok := guildIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.svs.GetEconomyStatistics(reqCtx, guildID)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	response := StatisticsResponse{
		GuildID:        stats.GuildID,
		TotalAccounts:  stats.TotalAccounts,
		ActiveAccounts: stats.ActiveAccounts,
		TotalBalance:   stats.TotalBalance.String(),
		Transactions:   make([]TypeAggregationItem, len(stats.Transactions)),
		TopHolders:     make([]TopHolderResponseItem, len(stats.TopHolders)),
	}
	for i, agg := range stats.Transactions {
		response.Transactions[i] = TypeAggregationItem{
			Type:   string(agg.Type),
			Count:  agg.Count,
			Volume: agg.Volume.String(),
		}
	}
	for i, holder := range stats.TopHolders {
		response.TopHolders[i] = TopHolderResponseItem{
			AccountID:   holder.AccountID,
			AccountType: string(holder.AccountType),
			OwnerRef:    holder.OwnerRef,
			Balance:     holder.Balance.String(),
		}
	}

	c.JSON(http.StatusOK, response)
}

// limitQuery парсит limit из query. Невалидные значения тихо заменяются нулем:
// дальше сервис подставит дефолт и зажмет верхнюю границу.
func limitQuery(c *gin.Context) uint {
	limit, err := strconv.ParseUint(c.Query("limit"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(limit)
}

func transactionTypeQuery(c *gin.Context) (*domain.TransactionType, bool) {
	rawType := c.Query("type")
	if rawType == "" {
		return nil, true
	}
	transactionType := domain.TransactionType(rawType)
	if !transactionType.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid transaction type"})
		return nil, false
	}
	return &transactionType, true
}
