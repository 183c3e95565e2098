package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ошибки слоя репозитория.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
)

// Бизнес-ошибки леджера. Это ожидаемые исходы операций, а не исключительные ситуации:
// вызывающая сторона матчит их через errors.Is и показывает юзеру.
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidOwnerRef    = errors.New("invalid owner ref")
	ErrSelfTransfer       = errors.New("self transfer")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrAccountFrozen      = errors.New("account is frozen")
	ErrGuildMismatch      = errors.New("accounts belong to different guilds")
	ErrAmountOutOfRange   = errors.New("amount out of configured range")
	ErrDailyLimitExceeded = errors.New("daily transfer limit exceeded")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrConfigValidation   = errors.New("invalid currency config")
)

// DuplicateAccountError возвращается при попытке создать счет для уже занятой тройки
// (guild_id, account_type, owner_ref). Существующий счет прикладывается к ошибке.
type DuplicateAccountError struct {
	Account *Account
}

func NewDuplicateAccountError(account *Account) error {
	return &DuplicateAccountError{Account: account}
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf(
		"account %s already exists for guild %d",
		e.Account.ID,
		e.Account.GuildID,
	)
}

// IntegrityError возвращается при провале сверки баланса с историей транзакций. Счет при этом
// замораживается и никогда не исправляется автоматически.
type IntegrityError struct {
	AccountID string
	Balance   decimal.Decimal
	LedgerSum decimal.Decimal
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf(
		"ledger integrity violation on account %s: balance %s, transaction sum %s",
		e.AccountID,
		e.Balance.String(),
		e.LedgerSum.String(),
	)
}
