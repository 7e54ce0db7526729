// Package export renders statements as CSV or Excel workbooks.
package export

import (
	"strconv"

	"store-ledger/internal/statement"

	"github.com/shopspring/decimal"
)

var activityNames = map[statement.Activity]string{
	statement.Operating: "经营活动",
	statement.Investing: "投资活动",
	statement.Financing: "筹资活动",
}

var sectionNumbers = []string{"一", "二", "三"}

var storeStatusNames = map[statement.StoreStatus]string{
	statement.StorePreExisting:  "期初已开业",
	statement.StoreNewlyOpened:  "本期新开",
	statement.StoreNotYetOpened: "尚未开业",
	statement.StoreUntracked:    "未设期初",
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// CashFlowRows lays a cash-flow statement out as a table. A non-empty breakdown
// is appended after the summary.
func CashFlowRows(cf statement.ConsolidatedCashFlow) [][]string {
	rows := [][]string{{"项目", "类别", "金额(元)", "笔数"}}

	for i, a := range statement.Activities {
		name := activityNames[a]
		sec := cf.Section(a)
		rows = append(rows, []string{sectionNumbers[i] + "、" + name + "产生的现金流量", "", "", ""})
		for _, f := range sec.Inflows {
			rows = append(rows, []string{f.Label, f.Category, money(f.Amount), strconv.Itoa(f.Count)})
		}
		rows = append(rows, []string{name + "现金流入小计", "", money(sec.SubtotalInflow), ""})
		for _, f := range sec.Outflows {
			rows = append(rows, []string{f.Label, f.Category, money(f.Amount), strconv.Itoa(f.Count)})
		}
		rows = append(rows, []string{name + "现金流出小计", "", money(sec.SubtotalOutflow), ""})
		rows = append(rows, []string{name + "产生的现金流量净额", "", money(sec.NetCashFlow), ""})
	}

	sum := cf.Summary
	rows = append(rows,
		[]string{"四、现金及现金等价物净增加额", "", money(sum.NetIncrease), ""},
		[]string{"加：期初现金及现金等价物余额", "", money(sum.BeginningBalance), ""},
		[]string{"五、期末现金及现金等价物余额", "", money(sum.EndingBalance), ""},
	)

	if len(cf.StoreBreakdown) > 0 {
		rows = append(rows, []string{}, []string{"门店", "状态", "期初余额", "开业资金", "现金净流量", "期末余额"})
		for _, b := range cf.StoreBreakdown {
			rows = append(rows, []string{
				b.StoreName,
				storeStatusNames[b.Status],
				money(b.BeginningBalance),
				money(b.OpeningCapital),
				money(b.NetCashFlow),
				money(b.EndingBalance),
			})
		}
	}
	return rows
}

func plSectionRows(title string, sec statement.PLSection) [][]string {
	rows := [][]string{{title, "", money(sec.Total), ""}}
	for _, it := range sec.Items {
		rows = append(rows, []string{"", it.Category, money(it.Amount), it.Percentage.StringFixed(2) + "%"})
	}
	return rows
}

// ProfitLossRows lays a P&L statement out as a table.
func ProfitLossRows(pl statement.ProfitLossStatement) [][]string {
	rows := [][]string{{"项目", "类别", "金额(元)", "占比"}}
	rows = append(rows, plSectionRows("一、营业收入", pl.Revenue)...)
	rows = append(rows, plSectionRows("减：营业成本", pl.Cost)...)
	rows = append(rows, []string{"二、营业利润", "", money(pl.OperatingProfit), ""})
	rows = append(rows, plSectionRows("加：营业外收入", pl.NonOperatingIncome)...)
	rows = append(rows, plSectionRows("减：营业外支出", pl.NonOperatingExpense)...)
	rows = append(rows,
		[]string{"三、利润总额", "", money(pl.TotalProfit), ""},
		[]string{"四、净利润", "", money(pl.NetProfit), ""},
	)
	return rows
}

// MonthlyRows lays a monthly series out as one row per month.
func MonthlyRows(points []statement.MonthPoint) [][]string {
	rows := [][]string{{"月份", "期初余额", "经营活动净额", "投资活动净额", "筹资活动净额", "净增加额", "期末余额"}}
	for _, p := range points {
		rows = append(rows, []string{
			p.Month,
			money(p.BeginningBalance),
			money(p.Operating),
			money(p.Investing),
			money(p.Financing),
			money(p.NetIncrease),
			money(p.EndingBalance),
		})
	}
	return rows
}
