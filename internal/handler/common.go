package handler

import (
	"errors"
	"net/http"
	"strconv"

	"store-ledger/internal/models"
	"store-ledger/internal/report"
	"store-ledger/internal/repository"
	"store-ledger/internal/statement"
	"store-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser 取出 AuthMiddleware 放入的当前用户，未登录时直接写回 401
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return nil, false
	}
	return user, true
}

// idParam 解析路径参数 :id
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return 0, false
	}
	return uint(id), true
}

// fail 按错误类型返回对应的业务码
func fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
	case errors.Is(err, repository.ErrBeforeOpening):
		util.Error(c, http.StatusBadRequest, util.CodeBeforeOpening, "交易日期早于门店期初日期")
	case errors.Is(err, repository.ErrDuplicate):
		util.Error(c, http.StatusConflict, util.CodeDuplicate, "名称已存在")
	case errors.Is(err, repository.ErrInvalid),
		errors.Is(err, statement.ErrInvalidInput):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, report.ErrInvalidRange):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidRange, "日期范围不合法")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, fallback)
	}
}
