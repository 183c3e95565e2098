package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Account struct {
	ID          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	GuildID     int64
	AccountType AccountType
	OwnerRef    string
	Balance     decimal.Decimal
	Active      bool
	// Frozen выставляется при обнаружении расхождения баланса с историей транзакций.
	// Замороженный счет отклоняет любые операции до ручной разморозки.
	Frozen bool
}

type Transaction struct {
	ID        int64
	CreatedAt time.Time
	GuildID   int64
	// FromAccountID == nil означает системное зачисление, ToAccountID == nil - системное списание.
	FromAccountID *string
	ToAccountID   *string
	Amount        decimal.Decimal
	Type          TransactionType
	Reason        string
	CreatedBy     string
}

type CurrencyConfig struct {
	GuildID               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
	CurrencyName          string
	CurrencySymbol        string
	DecimalPlaces         int32
	MinTransferAmount     decimal.Decimal
	MaxTransferAmount     decimal.Decimal
	DailyTransferLimit    decimal.Decimal
	EnableNegativeBalance bool
}
