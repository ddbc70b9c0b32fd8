package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
	resp "go-places-api/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				resp.AbortFail(c, apperr.New(http.StatusInternalServerError, "An unknown error occurred!"))
			}
		}()
		c.Next()
	}
}
