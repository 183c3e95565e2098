package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeUser       AccountType = "user"
	AccountTypeCouncil    AccountType = "government_council"
	AccountTypeDepartment AccountType = "government_department"
)

// CouncilOwnerRef фиксированный owner_ref для счета совета гильдии. У гильдии может быть только
// один счет совета, поэтому owner_ref не несет смысла и всегда равен этому токену.
const CouncilOwnerRef = "council"

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeUser, AccountTypeCouncil, AccountTypeDepartment:
		return true
	}
	return false
}

// idPrefix возвращает префикс для построения ID счета.
func (t AccountType) idPrefix() string {
	switch t {
	case AccountTypeUser:
		return "user"
	case AccountTypeCouncil:
		return "council"
	case AccountTypeDepartment:
		return "dept"
	}
	return "unknown"
}

// BuildAccountID собирает ID счета в формате `{prefix}_{guild_id}_{owner_ref}`. Формат ID
// принадлежит леджеру: внешние модули не должны собирать такие строки самостоятельно.
func BuildAccountID(accountType AccountType, guildID int64, ownerRef string) string {
	return fmt.Sprintf("%s_%d_%s", accountType.idPrefix(), guildID, ownerRef)
}

type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeReward   TransactionType = "reward"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeTransfer, TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeReward:
		return true
	}
	return false
}

// FitsPrecision проверяет что amount не содержит больше знаков после запятой, чем разрешено
// настройкой валюты гильдии.
func FitsPrecision(amount decimal.Decimal, decimalPlaces int32) bool {
	return amount.Exponent() >= -decimalPlaces || amount.Equal(amount.Truncate(decimalPlaces))
}
