package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateProfitLoss_Buckets(t *testing.T) {
	entries := annotate(t,
		tx("1", Income, "房费收入", "3000", "2025-01-01", ""),
		tx("2", Income, "餐饮收入", "1000", "2025-01-02", ""),
		tx("3", Expense, "水电费", "500", "2025-01-03", ""),
		tx("4", Expense, "员工工资", "1500", "2025-01-04", ""),
		tx("5", Income, "投资收益", "200", "2025-01-05", ""),
		tx("6", Expense, "营业外支出", "100", "2025-01-06", ""),
		tx("7", Expense, "所得税", "50", "2025-01-07", ""),
		tx("8", Income, "股东投资", "9999", "2025-01-08", ""),
		tx("9", Expense, "偿还借款", "888", "2025-01-09", ""),
	)

	pl := CalculateProfitLoss(entries)

	assertDec(t, "4000", pl.Revenue.Total)
	require.Len(t, pl.Revenue.Items, 2)
	assert.Equal(t, "房费收入", pl.Revenue.Items[0].Category)
	assertDec(t, "75", pl.Revenue.Items[0].Percentage)
	assertDec(t, "25", pl.Revenue.Items[1].Percentage)

	assertDec(t, "2000", pl.Cost.Total)
	assert.Equal(t, "员工工资", pl.Cost.Items[0].Category)
	assertDec(t, "2000", pl.OperatingProfit)

	assertDec(t, "200", pl.NonOperatingIncome.Total)
	assertDec(t, "150", pl.NonOperatingExpense.Total, "income tax is folded into non-operating expense")
	assertDec(t, "2050", pl.TotalProfit)
	assert.True(t, pl.NetProfit.Equal(pl.TotalProfit))
}

func TestCalculateProfitLoss_ExcludedTransactionsStillInCashFlow(t *testing.T) {
	in := tx("1", Income, "贷款", "5000", "2025-01-01", "")
	in.IncludeInProfitLoss = boolPtr(false)
	entries := annotate(t, in)

	pl := CalculateProfitLoss(entries)
	cf := CalculateCashFlow(entries, decimal.Zero)

	for _, sec := range []PLSection{pl.Revenue, pl.Cost, pl.NonOperatingIncome, pl.NonOperatingExpense} {
		assert.Empty(t, sec.Items)
		assertDec(t, "0", sec.Total)
	}
	assertDec(t, "5000", cf.Summary.TotalInflow)
}

func TestCalculateProfitLoss_PercentagesRoundToTwoPlaces(t *testing.T) {
	entries := annotate(t,
		tx("1", Expense, "a", "1", "2025-01-01", ""),
		tx("2", Expense, "b", "1", "2025-01-01", ""),
		tx("3", Expense, "c", "1", "2025-01-01", ""),
	)

	pl := CalculateProfitLoss(entries)

	require.Len(t, pl.Cost.Items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{pl.Cost.Items[0].Category, pl.Cost.Items[1].Category, pl.Cost.Items[2].Category})
	for _, it := range pl.Cost.Items {
		assertDec(t, "33.33", it.Percentage)
		assert.Equal(t, 1, it.Count)
	}
}

func TestCalculateProfitLoss_Empty(t *testing.T) {
	pl := CalculateProfitLoss(nil)

	assert.NotNil(t, pl.Revenue.Items)
	assertDec(t, "0", pl.NetProfit)
}

func TestCalculateProfitLoss_ZeroAmountSectionHasZeroPercentage(t *testing.T) {
	entries := annotate(t, tx("1", Income, "房费收入", "0", "2025-01-01", ""))

	pl := CalculateProfitLoss(entries)

	require.Len(t, pl.Revenue.Items, 1)
	assertDec(t, "0", pl.Revenue.Items[0].Percentage)
}

func TestPercentage(t *testing.T) {
	assertDec(t, "0", Percentage(d("5"), decimal.Zero))
	assertDec(t, "66.67", Percentage(d("2"), d("3")))
	assertDec(t, "100", Percentage(d("3"), d("3")))
}
