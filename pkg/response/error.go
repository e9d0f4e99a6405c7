package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
	Err  error
}

func (e *BizError) Error() string {
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Err
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// Wrap 携带底层错误，便于日志记录
func Wrap(code int, msg string, err error) *BizError {
	return &BizError{Code: code, Msg: msg, Err: err}
}

// Status BizError 的 Code 即 HTTP 状态码，其余错误按 500 处理
func Status(err error) int {
	var be *BizError
	if errors.As(err, &be) && be.Code >= 400 && be.Code < 600 {
		return be.Code
	}
	return http.StatusInternalServerError
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
