package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/pkg/keylock"
)

// AuditRecorder пишет структурированную запись о каждой попытке мутации леджера,
// включая отклоненные. Это дополнение к таблице транзакций: транзакция существует только
// для успешно проведенного движения денег, а здесь видны и отказы.
type AuditRecorder struct {
	log *logrus.Logger
}

func NewAuditRecorder(log *logrus.Logger) *AuditRecorder {
	return &AuditRecorder{log: log}
}

type auditEntry struct {
	Operation string
	Actor     string
	From      string
	To        string
	Amount    decimal.Decimal
}

// record фиксирует исход операции. err == nil означает закоммиченную операцию.
func (a *AuditRecorder) record(entry auditEntry, err error) {
	fields := logrus.Fields{
		"audit":     true,
		"operation": entry.Operation,
		"actor":     entry.Actor,
		"outcome":   "committed",
	}
	if entry.From != "" {
		fields["from_account"] = entry.From
	}
	if entry.To != "" {
		fields["to_account"] = entry.To
	}
	if !entry.Amount.IsZero() {
		fields["amount"] = entry.Amount.String()
	}

	if err == nil {
		a.log.WithFields(fields).Info("ledger operation committed")
		return
	}

	fields["outcome"] = "rejected"
	fields["error_code"] = ErrorCode(err)
	a.log.WithFields(fields).WithError(err).Warn("ledger operation rejected")
}

// ConfigChange фиксирует изменение настроек валюты. Это аудит-событие, а не транзакция:
// деньги при этом не двигаются.
func (a *AuditRecorder) ConfigChange(guildID int64, updatedBy string, old, updated *domain.CurrencyConfig) {
	a.log.WithFields(logrus.Fields{
		"audit":     true,
		"operation": "update_currency_config",
		"actor":     updatedBy,
		"guild_id":  guildID,
		"outcome":   "committed",
		"old":       configFields(old),
		"new":       configFields(updated),
	}).Info("currency config updated")
}

func configFields(c *domain.CurrencyConfig) logrus.Fields {
	return logrus.Fields{
		"currency_name":           c.CurrencyName,
		"currency_symbol":         c.CurrencySymbol,
		"decimal_places":          c.DecimalPlaces,
		"min_transfer_amount":     c.MinTransferAmount.String(),
		"max_transfer_amount":     c.MaxTransferAmount.String(),
		"daily_transfer_limit":    c.DailyTransferLimit.String(),
		"enable_negative_balance": c.EnableNegativeBalance,
	}
}

// ErrorCode маппит ошибку в устойчивый код для аудита и транспортного слоя.
func ErrorCode(err error) string {
	var duplicateErr *domain.DuplicateAccountError
	var integrityErr *domain.IntegrityError

	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidAccountType):
		return "invalid_account_type"
	case errors.Is(err, domain.ErrInvalidOwnerRef):
		return "invalid_owner_ref"
	case errors.Is(err, domain.ErrSelfTransfer):
		return "self_transfer"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInactiveAccount):
		return "inactive_account"
	case errors.Is(err, domain.ErrAccountFrozen):
		return "account_frozen"
	case errors.Is(err, domain.ErrGuildMismatch):
		return "guild_mismatch"
	case errors.Is(err, domain.ErrAmountOutOfRange):
		return "amount_out_of_range"
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return "daily_limit_exceeded"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrConfigValidation):
		return "invalid_config"
	case errors.Is(err, keylock.ErrLockTimeout):
		return "lock_timeout"
	case errors.As(err, &duplicateErr):
		return "duplicate_account"
	case errors.As(err, &integrityErr):
		return "integrity_violation"
	default:
		return "storage_error"
	}
}
