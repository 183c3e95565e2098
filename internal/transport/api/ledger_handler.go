package api

import (
	"context"

	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/service"
)

// LedgerHandler мутирующая часть API: счета и движения денег.
type LedgerHandler struct {
	svs LedgerServicer
}

func NewLedgerHandler(svs LedgerServicer) *LedgerHandler {
	return &LedgerHandler{
		svs: svs,
	}
}

type CreateAccountParams struct {
	GuildID        int64           `json:"guild_id" binding:"required,gt=0"`
	AccountType    string          `json:"account_type" binding:"required"`
	OwnerRef       string          `json:"owner_ref"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// CreateAccount POST RouteGroup + AccountsRoute.
func (h *LedgerHandler) CreateAccount(c *gin.Context) {
	var params CreateAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.CreateAccount(reqCtx, service.CreateAccountArgs{
		GuildID:        params.GuildID,
		AccountType:    domain.AccountType(params.AccountType),
		OwnerRef:       params.OwnerRef,
		InitialBalance: params.InitialBalance,
		CreatedBy:      getActorIDFromContext(c),
	})
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAccountResponse(account))
}

type MovementParams struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason"`
}

// Deposit POST RouteGroup + AccountDepositRoute.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	h.movement(c, h.svs.Deposit)
}

// Reward POST RouteGroup + AccountRewardRoute.
func (h *LedgerHandler) Reward(c *gin.Context) {
	h.movement(c, h.svs.Reward)
}

// Withdraw POST RouteGroup + AccountWithdrawRoute.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	h.movement(c, h.svs.Withdraw)
}

func (h *LedgerHandler) movement(
	c *gin.Context,
	op func(context.Context, service.MovementArgs) (*domain.Transaction, error),
) {
	var params MovementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trans, err := op(reqCtx, service.MovementArgs{
		AccountID: c.Param("id"),
		Amount:    params.Amount,
		Reason:    params.Reason,
		CreatedBy: getActorIDFromContext(c),
	})
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(trans))
}

type TransferParams struct {
	FromAccountID string          `json:"from_account_id" binding:"required"`
	ToAccountID   string          `json:"to_account_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Reason        string          `json:"reason"`
}

// Transfer POST RouteGroup + TransferRoute.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trans, err := h.svs.Transfer(reqCtx, service.TransferArgs{
		FromAccountID: params.FromAccountID,
		ToAccountID:   params.ToAccountID,
		Amount:        params.Amount,
		Reason:        params.Reason,
		CreatedBy:     getActorIDFromContext(c),
	})
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(trans))
}

// Deactivate POST RouteGroup + AccountDeactivateRoute.
func (h *LedgerHandler) Deactivate(c *gin.Context) {
	h.accountFlag(c, h.svs.DeactivateAccount)
}

// Reactivate POST RouteGroup + AccountReactivateRoute.
func (h *LedgerHandler) Reactivate(c *gin.Context) {
	h.accountFlag(c, h.svs.ReactivateAccount)
}

// Unfreeze POST RouteGroup + AccountUnfreezeRoute.
func (h *LedgerHandler) Unfreeze(c *gin.Context) {
	h.accountFlag(c, h.svs.UnfreezeAccount)
}

func (h *LedgerHandler) accountFlag(
	c *gin.Context,
	op func(ctx context.Context, accountID, actor string) (*domain.Account, error),
) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := op(reqCtx, c.Param("id"), getActorIDFromContext(c))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Verify POST RouteGroup + AccountVerifyRoute. Сверка баланса с историей транзакций.
func (h *LedgerHandler) Verify(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.VerifyAccount(reqCtx, c.Param("id"), getActorIDFromContext(c)); err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "consistent"})
}
