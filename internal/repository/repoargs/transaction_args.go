package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
)

type TransactionCreate struct {
	GuildID       int64
	FromAccountID *string
	ToAccountID   *string
	Amount        decimal.Decimal
	Type          domain.TransactionType
	Reason        string
	CreatedBy     string
}

// HistoryQuery параметры выборки истории по счету. Сортировка фиксированная:
// created_at по убыванию, id по убыванию при равенстве.
type HistoryQuery struct {
	AccountID string
	Limit     uint
	Type      *domain.TransactionType
}

// AuditQuery параметры выборки аудита по всей гильдии. UserID фильтрует по счету
// юзера как источнику или получателю.
type AuditQuery struct {
	GuildID int64
	Limit   uint
	Type    *domain.TransactionType
	UserID  *string
}

// TypeAggregation количество и оборот транзакций одного типа.
type TypeAggregation struct {
	Type   domain.TransactionType
	Count  int64
	Volume decimal.Decimal
}
