package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 通用返回结构里的 data 使用 map
type Response map[string]interface{}

// 业务错误码：前三位对应 HTTP 状态，后两位区分具体原因
const (
	CodeOK            = 0
	CodeInvalidParam  = 40001
	CodeBeforeOpening = 40002 // 交易日期早于门店期初日期
	CodeInvalidRange  = 40003 // 报表日期范围不合法
	CodeAuth          = 40101
	CodeNotFound      = 40401
	CodeDuplicate     = 40901 // 名称或用户名已存在
	CodeServerErr     = 50001
)

// Success 统一成功返回
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error 统一错误返回
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
