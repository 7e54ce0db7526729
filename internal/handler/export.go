package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"store-ledger/internal/export"
	"store-ledger/internal/report"
	"store-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 负责报表导出
type ExportHandler struct {
	Svc *report.Service
}

func NewExportHandler(svc *report.Service) *ExportHandler {
	return &ExportHandler{Svc: svc}
}

// rendered 是一份报表的两种输出方式
type rendered struct {
	name     string
	csv      func(*bytes.Buffer) error
	workbook func() (*excelize.File, error)
}

func (h *ExportHandler) render(c *gin.Context, kind string, companyID uint, q report.Query) (rendered, error) {
	ctx := c.Request.Context()
	switch kind {
	case "cash-flow":
		rep, err := h.Svc.CashFlow(ctx, companyID, q)
		if err != nil {
			return rendered{}, err
		}
		return rendered{
			name:     "cash_flow",
			csv:      func(b *bytes.Buffer) error { return export.WriteCashFlowCSV(b, rep.ConsolidatedCashFlow) },
			workbook: func() (*excelize.File, error) { return export.CashFlowWorkbook(rep.ConsolidatedCashFlow) },
		}, nil
	case "profit-loss":
		rep, err := h.Svc.ProfitLoss(ctx, companyID, q)
		if err != nil {
			return rendered{}, err
		}
		return rendered{
			name:     "profit_loss",
			csv:      func(b *bytes.Buffer) error { return export.WriteProfitLossCSV(b, rep.ProfitLossStatement) },
			workbook: func() (*excelize.File, error) { return export.ProfitLossWorkbook(rep.ProfitLossStatement) },
		}, nil
	case "monthly":
		rep, err := h.Svc.MonthlyCashFlow(ctx, companyID, q)
		if err != nil {
			return rendered{}, err
		}
		return rendered{
			name:     "monthly_cash_flow",
			csv:      func(b *bytes.Buffer) error { return export.WriteMonthlyCSV(b, rep.Points) },
			workbook: func() (*excelize.File, error) { return export.MonthlyWorkbook(rep.Points) },
		}, nil
	}
	return rendered{}, fmt.Errorf("unknown report %q", kind)
}

// Export 导出报表，:report 为 cash-flow / profit-loss / monthly，format 为 csv 或 xlsx
func (h *ExportHandler) Export(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	kind := c.Param("report")
	if kind != "cash-flow" && kind != "profit-loss" && kind != "monthly" {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "报表不存在")
		return
	}
	format := c.DefaultQuery("format", "xlsx")
	if format != "csv" && format != "xlsx" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "导出格式仅支持 csv 或 xlsx")
		return
	}
	q, ok := reportQuery(c)
	if !ok {
		return
	}

	r, err := h.render(c, kind, user.CompanyID, q)
	if err != nil {
		fail(c, err, "生成报表失败")
		return
	}

	// 先写入缓冲区，出错时还能返回 JSON
	var buf bytes.Buffer
	contentType := "text/csv; charset=utf-8"
	if format == "csv" {
		err = r.csv(&buf)
	} else {
		contentType = export.ContentTypeXLSX
		var f *excelize.File
		if f, err = r.workbook(); err == nil {
			_, err = f.WriteTo(&buf)
			_ = f.Close()
		}
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.%s", r.name, q.Start.Time().Format("20060102"), q.End.Time().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
