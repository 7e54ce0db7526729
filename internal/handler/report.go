package handler

import (
	"net/http"

	"store-ledger/internal/report"
	"store-ledger/internal/statement"
	"store-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// ReportHandler 负责报表接口
type ReportHandler struct {
	Svc *report.Service
}

func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// reportQuery 解析 start、end、store_ids 查询参数
func reportQuery(c *gin.Context) (report.Query, bool) {
	var q report.Query
	var err error
	if q.Start, err = statement.ParseDate(c.Query("start")); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "开始日期格式应为 YYYY-MM-DD")
		return q, false
	}
	if q.End, err = statement.ParseDate(c.Query("end")); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "结束日期格式应为 YYYY-MM-DD")
		return q, false
	}
	if q.End.Before(q.Start) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidRange, "结束日期不能早于开始日期")
		return q, false
	}
	if q.StoreIDs, err = util.ParseIDList(c.Query("store_ids")); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "门店参数不合法")
		return q, false
	}
	return q, true
}

// CashFlow 现金流量表；单店按单一主体计算，多店或全部门店合并
func (h *ReportHandler) CashFlow(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := reportQuery(c)
	if !ok {
		return
	}

	rep, err := h.Svc.CashFlow(c.Request.Context(), user.CompanyID, q)
	if err != nil {
		fail(c, err, "生成报表失败")
		return
	}
	util.Success(c, util.Response{"report": rep})
}

// MonthlyCashFlow 按月现金流序列
func (h *ReportHandler) MonthlyCashFlow(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := reportQuery(c)
	if !ok {
		return
	}

	rep, err := h.Svc.MonthlyCashFlow(c.Request.Context(), user.CompanyID, q)
	if err != nil {
		fail(c, err, "生成报表失败")
		return
	}
	util.Success(c, util.Response{"report": rep})
}

// ProfitLoss 利润表
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := reportQuery(c)
	if !ok {
		return
	}

	rep, err := h.Svc.ProfitLoss(c.Request.Context(), user.CompanyID, q)
	if err != nil {
		fail(c, err, "生成报表失败")
		return
	}
	util.Success(c, util.Response{"report": rep})
}

// StoreComparison 门店对比
func (h *ReportHandler) StoreComparison(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := reportQuery(c)
	if !ok {
		return
	}

	rep, err := h.Svc.StoreComparison(c.Request.Context(), user.CompanyID, q)
	if err != nil {
		fail(c, err, "生成报表失败")
		return
	}
	util.Success(c, util.Response{"report": rep})
}
