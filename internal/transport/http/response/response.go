package response

import (
	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
)

// ErrBody 失败时的统一出参 {code, message}，HTTP 状态码与 code 一致
type ErrBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OK 成功直接回传业务负载，状态码由调用方定（200/201）
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Fail 在边界把任意 error 收敛成 {code, message}
func Fail(c *gin.Context, err error) {
	e := apperr.From(err)
	c.JSON(e.Code, ErrBody{Code: e.Code, Message: e.Error()})
}

// AbortFail 中间件用：终止后续 handler
func AbortFail(c *gin.Context, err error) {
	e := apperr.From(err)
	c.AbortWithStatusJSON(e.Code, ErrBody{Code: e.Code, Message: e.Error()})
}
