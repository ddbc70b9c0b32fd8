package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
	"go-places-api/internal/core/auth"
	resp "go-places-api/internal/transport/http/response"
)

// KeyUserID 校验通过后写进请求上下文的已认证主体
const KeyUserID = "userId"

// AuthJWT 承载 token 守卫：Authorization: Bearer <token>。
// 浏览器跨域协商的 OPTIONS 预检不带凭证，直接放行
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, apperr.Forbidden("Authentication failed!"))
			return
		}
		tok := strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
		if tok == "" {
			resp.AbortFail(c, apperr.Forbidden("Authentication failed!"))
			return
		}
		claims, err := j.Parse(tok)
		if err != nil {
			resp.AbortFail(c, apperr.Forbidden("Authentication failed!"))
			return
		}
		c.Set(KeyUserID, claims.UserID)
		c.Next()
	}
}
