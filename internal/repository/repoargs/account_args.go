package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
)

type AccountCreate struct {
	ID          string
	GuildID     int64
	AccountType domain.AccountType
	OwnerRef    string
	Balance     decimal.Decimal
}

// AccountFilter опциональные фильтры выборки счетов гильдии. Nil-поля не применяются.
type AccountFilter struct {
	AccountType *domain.AccountType
	ActiveOnly  bool
}

// GuildAccountStats агрегация по счетам одной гильдии.
type GuildAccountStats struct {
	TotalAccounts  int64
	ActiveAccounts int64
	TotalBalance   decimal.Decimal
}

type TopHolder struct {
	AccountID   string
	AccountType domain.AccountType
	OwnerRef    string
	Balance     decimal.Decimal
}
