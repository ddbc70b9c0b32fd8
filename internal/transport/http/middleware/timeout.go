package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
	resp "go-places-api/internal/transport/http/response"
)

// Timeout 请求级兜底超时（store / 地址解析自带的超时之外再加一层）
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			resp.AbortFail(c, apperr.New(http.StatusGatewayTimeout, "timeout"))
		}
	}
}
