package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-places-api/internal/core/apperr"
	resp "go-places-api/internal/transport/http/response"
)

// bindFail 请求体解析失败的统一出口；
// 体积超限（MaxBytesReader 切断）是 413，不能混进 422
func bindFail(c *gin.Context, err error, msg string) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		resp.Fail(c, apperr.New(http.StatusRequestEntityTooLarge, "request body too large"))
		return
	}
	resp.Fail(c, apperr.Unprocessable(msg))
}
