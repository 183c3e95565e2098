package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "ledger unavailable"
	default:
		return "internal server error"
	}
}

// Errors рендерит отложенные ошибки хендлеров. API отвечает только JSON.
// Приватные ошибки (детали хранилища и т.п.) наружу не уходят, клиент видит
// только текст по статусу.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		msg := statusErrorText(c.Writer.Status())
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		}

		c.JSON(c.Writer.Status(), gin.H{"error": msg})
		c.Abort()
	}
}
