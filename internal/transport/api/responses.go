package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
)

// Суммы сериализуются строкой (поведение shopspring/decimal по умолчанию),
// чтобы потребители не теряли точность на float.

type AccountResponse struct {
	ID          string          `json:"id"`
	GuildID     int64           `json:"guild_id"`
	AccountType string          `json:"account_type"`
	OwnerRef    string          `json:"owner_ref"`
	Balance     decimal.Decimal `json:"balance"`
	Active      bool            `json:"active"`
	Frozen      bool            `json:"frozen"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		GuildID:     account.GuildID,
		AccountType: string(account.AccountType),
		OwnerRef:    account.OwnerRef,
		Balance:     account.Balance,
		Active:      account.Active,
		Frozen:      account.Frozen,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

type TransactionResponse struct {
	ID            int64           `json:"id"`
	GuildID       int64           `json:"guild_id"`
	FromAccountID *string         `json:"from_account_id"`
	ToAccountID   *string         `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Reason        string          `json:"reason,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func newTransactionResponse(trans *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            trans.ID,
		GuildID:       trans.GuildID,
		FromAccountID: trans.FromAccountID,
		ToAccountID:   trans.ToAccountID,
		Amount:        trans.Amount,
		Type:          string(trans.Type),
		Reason:        trans.Reason,
		CreatedBy:     trans.CreatedBy,
		CreatedAt:     trans.CreatedAt,
	}
}

func newTransactionListResponse(transactions []domain.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = newTransactionResponse(&transactions[i])
	}
	return response
}

type CurrencyConfigResponse struct {
	GuildID               int64           `json:"guild_id"`
	CurrencyName          string          `json:"currency_name"`
	CurrencySymbol        string          `json:"currency_symbol"`
	DecimalPlaces         int32           `json:"decimal_places"`
	MinTransferAmount     decimal.Decimal `json:"min_transfer_amount"`
	MaxTransferAmount     decimal.Decimal `json:"max_transfer_amount"`
	DailyTransferLimit    decimal.Decimal `json:"daily_transfer_limit"`
	EnableNegativeBalance bool            `json:"enable_negative_balance"`
}

func newCurrencyConfigResponse(config *domain.CurrencyConfig) CurrencyConfigResponse {
	return CurrencyConfigResponse{
		GuildID:               config.GuildID,
		CurrencyName:          config.CurrencyName,
		CurrencySymbol:        config.CurrencySymbol,
		DecimalPlaces:         config.DecimalPlaces,
		MinTransferAmount:     config.MinTransferAmount,
		MaxTransferAmount:     config.MaxTransferAmount,
		DailyTransferLimit:    config.DailyTransferLimit,
		EnableNegativeBalance: config.EnableNegativeBalance,
	}
}
