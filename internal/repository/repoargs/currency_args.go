package repoargs

import "github.com/shopspring/decimal"

// CurrencyConfigUpdate частичное обновление настроек валюты. Nil-поля остаются без изменений.
type CurrencyConfigUpdate struct {
	CurrencyName          *string
	CurrencySymbol        *string
	DecimalPlaces         *int32
	MinTransferAmount     *decimal.Decimal
	MaxTransferAmount     *decimal.Decimal
	DailyTransferLimit    *decimal.Decimal
	EnableNegativeBalance *bool
}
