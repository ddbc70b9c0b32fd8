package apperr

import (
	"errors"
	"net/http"
)

// E 统一业务错误：Code 直接用 HTTP 语义，Msg 是返回给调用方的文案
type E struct {
	Code int
	Msg  string
	Err  error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *E) Unwrap() error { return e.Err }

func New(code int, msg string) *E            { return &E{Code: code, Msg: msg} }
func BadRequest(msg string) *E               { return &E{Code: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) *E             { return &E{Code: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) *E                { return &E{Code: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) *E                 { return &E{Code: http.StatusNotFound, Msg: msg} }
func Unprocessable(msg string) *E            { return &E{Code: http.StatusUnprocessableEntity, Msg: msg} }
func Internal(msg string, err error) *E      { return &E{Code: http.StatusInternalServerError, Msg: msg, Err: err} }
func BadGateway(msg string, err error) *E    { return &E{Code: http.StatusBadGateway, Msg: msg, Err: err} }

// From 在边界处收敛：不是 *E 的错误一律按 500 处理
func From(err error) *E {
	var e *E
	if errors.As(err, &e) {
		return e
	}
	return &E{Code: http.StatusInternalServerError, Msg: "An unknown error occurred!", Err: err}
}
