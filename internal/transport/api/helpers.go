package api

import (
	"errors"
	"strconv"

	"net/http"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/service"
	"github.com/fsdevblog/guild-ledger/internal/transport/api/middlewares"
	"github.com/fsdevblog/guild-ledger/pkg/keylock"
	"github.com/gin-gonic/gin"
)

// getActorIDFromContext берет из контекста gin ID действующего лица. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется пустая строка.
func getActorIDFromContext(c *gin.Context) string {
	actorIDRaw, exist := c.Get(middlewares.CurrentActorIDKey)
	if !exist {
		return ""
	}
	actorID, ok := actorIDRaw.(string)
	if !ok {
		return ""
	}
	return actorID
}

// guildIDParam парсит :guild_id из пути.
func guildIDParam(c *gin.Context) (int64, bool) {
	guildID, err := strconv.ParseInt(c.Param("guild_id"), 10, 64)
	if err != nil || guildID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid guild id"})
		return 0, false
	}
	return guildID, true
}

// abortWithLedgerError маппит ошибку леджера в http статус. Бизнес-отказы уходят наружу
// со своим кодом, ошибки хранилища прячутся за generic 500.
func abortWithLedgerError(c *gin.Context, err error) {
	code := service.ErrorCode(err)

	var status int
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrInvalidOwnerRef),
		errors.Is(err, domain.ErrSelfTransfer),
		errors.Is(err, domain.ErrAmountOutOfRange),
		errors.Is(err, domain.ErrGuildMismatch),
		errors.Is(err, domain.ErrConfigValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrDailyLimitExceeded),
		errors.Is(err, domain.ErrInactiveAccount),
		errors.Is(err, domain.ErrAccountFrozen),
		isDuplicateAccountErr(err),
		isIntegrityErr(err):
		status = http.StatusConflict
	case errors.Is(err, keylock.ErrLockTimeout):
		// безопасно повторить: операция гарантированно не применилась
		c.Header("Retry-After", "1")
		status = http.StatusServiceUnavailable
	default:
		// ошибка хранилища: детали в приватной ошибке, наружу уходит generic ответ
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": code})
}

func isDuplicateAccountErr(err error) bool {
	var duplicateErr *domain.DuplicateAccountError
	return errors.As(err, &duplicateErr)
}

func isIntegrityErr(err error) bool {
	var integrityErr *domain.IntegrityError
	return errors.As(err, &integrityErr)
}
