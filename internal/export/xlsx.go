package export

import (
	"fmt"

	"store-ledger/internal/statement"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of the workbooks built here.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook puts rows into a new workbook on a sheet called sheet, bolds the header
// row and applies column widths (in characters) from left to right.
func Workbook(sheet string, rows [][]string, widths []float64) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	// 删除默认的 Sheet1
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("delete default sheet: %w", err)
		}
	}
	if index, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(index)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				_ = f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(rows) > 0 && len(rows[0]) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		_ = f.SetCellStyle(sheet, "A1", last, bold)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(sheet, col, col, w)
	}
	return f, nil
}

func CashFlowWorkbook(cf statement.ConsolidatedCashFlow) (*excelize.File, error) {
	return Workbook("现金流量表", CashFlowRows(cf), []float64{44, 16, 14, 12, 14, 14})
}

func ProfitLossWorkbook(pl statement.ProfitLossStatement) (*excelize.File, error) {
	return Workbook("利润表", ProfitLossRows(pl), []float64{18, 16, 14, 10})
}

func MonthlyWorkbook(points []statement.MonthPoint) (*excelize.File, error) {
	return Workbook("月度现金流", MonthlyRows(points), []float64{10, 14, 14, 14, 14, 14, 14})
}
