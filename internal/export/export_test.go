package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"store-ledger/internal/statement"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleCashFlow(t *testing.T) statement.ConsolidatedCashFlow {
	t.Helper()
	entries, err := statement.NewClassifier(nil).Annotate([]statement.Transaction{
		{ID: "1", Type: statement.Income, Category: "房费收入", Amount: dec("3000"), Date: statement.NewDate(2025, 1, 10), StoreID: "1"},
		{ID: "2", Type: statement.Expense, Category: "水电费", Amount: dec("500"), Date: statement.NewDate(2025, 1, 5), StoreID: "1"},
	})
	require.NoError(t, err)
	cf, err := statement.Consolidate(entries, []statement.Store{
		{ID: "1", Name: "一号店", InitialBalance: dec("1000"), InitialBalanceDate: statement.NewDate(2024, 12, 1)},
	}, statement.NewDate(2025, 1, 1), statement.NewDate(2025, 1, 31))
	require.NoError(t, err)
	return cf
}

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, utf8BOM), "missing BOM")
	r := csv.NewReader(bytes.NewReader(raw[len(utf8BOM):]))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func find(rows [][]string, first string) []string {
	for _, r := range rows {
		if len(r) > 0 && r[0] == first {
			return r
		}
	}
	return nil
}

func TestWriteCashFlowCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCashFlowCSV(&buf, sampleCashFlow(t)))

	rows := readCSV(t, &buf)
	assert.Equal(t, []string{"项目", "类别", "金额(元)", "笔数"}, rows[0])

	sales := find(rows, "销售商品、提供劳务收到的现金")
	require.NotNil(t, sales)
	assert.Equal(t, []string{"销售商品、提供劳务收到的现金", "房费收入", "3000.00", "1"}, sales)

	assert.Equal(t, "2500.00", find(rows, "经营活动产生的现金流量净额")[2])
	assert.Equal(t, "1000.00", find(rows, "加：期初现金及现金等价物余额")[2])
	assert.Equal(t, "3500.00", find(rows, "五、期末现金及现金等价物余额")[2])

	store := find(rows, "一号店")
	require.NotNil(t, store)
	assert.Equal(t, "期初已开业", store[1])
	assert.Equal(t, "3500.00", store[5])
}

func TestWriteProfitLossCSV(t *testing.T) {
	entries, err := statement.NewClassifier(nil).Annotate([]statement.Transaction{
		{ID: "1", Type: statement.Income, Category: "房费收入", Amount: dec("2"), Date: statement.NewDate(2025, 1, 1)},
		{ID: "2", Type: statement.Income, Category: "餐饮收入", Amount: dec("1"), Date: statement.NewDate(2025, 1, 1)},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProfitLossCSV(&buf, statement.CalculateProfitLoss(entries)))
	rows := readCSV(t, &buf)

	assert.Equal(t, "3.00", find(rows, "一、营业收入")[2])
	assert.Equal(t, []string{"", "房费收入", "2.00", "66.67%"}, rows[2])
	assert.Equal(t, "3.00", find(rows, "四、净利润")[2])
}

func TestWriteMonthlyCSV(t *testing.T) {
	points := []statement.MonthPoint{{
		Month: "2025-01", BeginningBalance: dec("10"), Operating: dec("5"),
		Investing: decimal.Zero, Financing: decimal.Zero, NetIncrease: dec("5"), EndingBalance: dec("15"),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlyCSV(&buf, points))
	rows := readCSV(t, &buf)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2025-01", "10.00", "5.00", "0.00", "0.00", "5.00", "15.00"}, rows[1])
}

func TestCashFlowWorkbook(t *testing.T) {
	f, err := CashFlowWorkbook(sampleCashFlow(t))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"现金流量表"}, f.GetSheetList())
	v, err := f.GetCellValue("现金流量表", "A1")
	require.NoError(t, err)
	assert.Equal(t, "项目", v)

	rows, err := f.GetRows("现金流量表")
	require.NoError(t, err)
	end := find(rows, "五、期末现金及现金等价物余额")
	require.NotNil(t, end)
	assert.Equal(t, "3500.00", end[2])

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestProfitLossAndMonthlyWorkbooks(t *testing.T) {
	pl, err := ProfitLossWorkbook(statement.CalculateProfitLoss(nil))
	require.NoError(t, err)
	defer pl.Close()
	assert.Equal(t, []string{"利润表"}, pl.GetSheetList())

	m, err := MonthlyWorkbook(nil)
	require.NoError(t, err)
	defer m.Close()
	v, err := m.GetCellValue("月度现金流", "G1")
	require.NoError(t, err)
	assert.Equal(t, "期末余额", v)
}
