package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"store-ledger/internal/statement"
)

// utf8BOM 让 Excel 正确识别中文
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes rows as UTF-8 CSV with a BOM.
func WriteCSV(w io.Writer, rows [][]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func WriteCashFlowCSV(w io.Writer, cf statement.ConsolidatedCashFlow) error {
	return WriteCSV(w, CashFlowRows(cf))
}

func WriteProfitLossCSV(w io.Writer, pl statement.ProfitLossStatement) error {
	return WriteCSV(w, ProfitLossRows(pl))
}

func WriteMonthlyCSV(w io.Writer, points []statement.MonthPoint) error {
	return WriteCSV(w, MonthlyRows(points))
}
