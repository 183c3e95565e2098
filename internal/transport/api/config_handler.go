package api

import (
	"context"

	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
)

// ConfigHandler настройки валюты гильдии. Чтение открытое (UI-слою нужны имя/символ/точность
// для форматирования), изменение только авторизованным актором.
type ConfigHandler struct {
	svs CurrencyServicer
}

func NewConfigHandler(svs CurrencyServicer) *ConfigHandler {
	return &ConfigHandler{
		svs: svs,
	}
}

// Show GET RouteGroup + GuildConfigRoute.
func (h *ConfigHandler) Show(c *gin.Context) {
	guildID, ok := guildIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	config, err := h.svs.GetConfig(reqCtx, guildID)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCurrencyConfigResponse(config))
}

type UpdateConfigParams struct {
	CurrencyName          *string          `json:"currency_name" binding:"omitempty,min=1,max_bytes=64"`
	CurrencySymbol        *string          `json:"currency_symbol" binding:"omitempty,min=1,max_bytes=16"`
	DecimalPlaces         *int32           `json:"decimal_places"`
	MinTransferAmount     *decimal.Decimal `json:"min_transfer_amount"`
	MaxTransferAmount     *decimal.Decimal `json:"max_transfer_amount"`
	DailyTransferLimit    *decimal.Decimal `json:"daily_transfer_limit"`
	EnableNegativeBalance *bool            `json:"enable_negative_balance"`
}

// Update PATCH RouteGroup + GuildConfigRoute. Частичное обновление: отсутствующие поля
// не трогаются.
func (h *ConfigHandler) Update(c *gin.Context) {
	guildID, ok := guildIDParam(c)
	if !ok {
		return
	}

	var params UpdateConfigParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	config, err := h.svs.UpdateConfig(reqCtx, guildID, repoargs.CurrencyConfigUpdate{
		CurrencyName:          params.CurrencyName,
		CurrencySymbol:        params.CurrencySymbol,
		DecimalPlaces:         params.DecimalPlaces,
		MinTransferAmount:     params.MinTransferAmount,
		MaxTransferAmount:     params.MaxTransferAmount,
		DailyTransferLimit:    params.DailyTransferLimit,
		EnableNegativeBalance: params.EnableNegativeBalance,
	}, getActorIDFromContext(c))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCurrencyConfigResponse(config))
}
