package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Code: code,
		Msg:  msg,
	})
}

// JSON 直接输出业务对象，不包裹 code/msg
func JSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
