package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
	resp "go-places-api/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小：声明了 Content-Length 的在入口直接拒掉，
// 没声明的（chunked 等）由 MaxBytesReader 在超限处切断读取，
// handler 侧按 *http.MaxBytesError 识别并回 413
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.AbortFail(c, apperr.New(http.StatusRequestEntityTooLarge, "request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
