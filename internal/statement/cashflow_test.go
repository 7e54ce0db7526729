package statement

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCashFlow_SingleStoreExample(t *testing.T) {
	entries := annotate(t,
		tx("1", Income, "房费收入", "3000", "2025-01-10", "s1"),
		tx("2", Expense, "水电费", "500", "2025-01-05", "s1"),
	)
	opening := d("1000")
	begin := ResolveBeginningBalance(opening, day("2025-01-01"), day("2025-01-01"), entries)

	st := CalculateCashFlow(InRange(entries, day("2025-01-01"), day("2025-01-31")), begin)

	assertDec(t, "2500", st.Operating.NetCashFlow)
	assertDec(t, "1000", st.Summary.BeginningBalance)
	assertDec(t, "2500", st.Summary.NetIncrease)
	assertDec(t, "3500", st.Summary.EndingBalance)
	assertBalanceIdentity(t, st)
}

func TestCalculateCashFlow_GroupsAndSortsByAmount(t *testing.T) {
	entries := annotate(t,
		tx("1", Expense, "水电费", "100", "2025-01-01", ""),
		tx("2", Expense, "房租", "300", "2025-01-02", ""),
		tx("3", Expense, "水电费", "250", "2025-01-03", ""),
		tx("4", Expense, "维修费", "350", "2025-01-04", ""),
		tx("5", Income, "借款收入", "1000", "2025-01-05", ""),
		tx("6", Expense, "设备购置", "800", "2025-01-06", ""),
	)

	st := CalculateCashFlow(entries, decimal.Zero)

	out := st.Operating.Outflows
	require.Len(t, out, 3)
	// 水电费 (350) ties with 维修费 (350) and was seen first.
	assert.Equal(t, "水电费", out[0].Category)
	assert.Equal(t, 2, out[0].Count)
	assertDec(t, "350", out[0].Amount)
	assert.Equal(t, "维修费", out[1].Category)
	assert.Equal(t, "房租", out[2].Category)

	assertDec(t, "1000", st.Financing.SubtotalInflow)
	assertDec(t, "800", st.Investing.SubtotalOutflow)
	assertDec(t, "-800", st.Investing.NetCashFlow)
	assertDec(t, "-1000", st.Operating.NetCashFlow)
	assertDec(t, "-800", st.Summary.EndingBalance)
	assertBalanceIdentity(t, st)
}

func TestCalculateCashFlow_NegativeEndingBalanceIsValid(t *testing.T) {
	entries := annotate(t, tx("1", Expense, "房租", "900", "2025-02-01", ""))

	st := CalculateCashFlow(entries, d("100"))

	assertDec(t, "-800", st.Summary.EndingBalance)
	assertBalanceIdentity(t, st)
}

func TestCalculateCashFlow_EmptyInputIsWellFormed(t *testing.T) {
	st := CalculateCashFlow(nil, d("42"))

	for _, a := range Activities {
		sec := st.Section(a)
		assert.NotNil(t, sec.Inflows)
		assert.NotNil(t, sec.Outflows)
		assert.Empty(t, sec.Inflows)
		assertDec(t, "0", sec.NetCashFlow)
	}
	assertDec(t, "42", st.Summary.EndingBalance)
}

func TestCalculateCashFlow_LabelFromClassification(t *testing.T) {
	entries := annotate(t, tx("1", Income, "股东投资", "5000", "2025-01-01", ""))

	st := CalculateCashFlow(entries, decimal.Zero)

	require.Len(t, st.Financing.Inflows, 1)
	assert.Equal(t, labelCapitalIn, st.Financing.Inflows[0].Label)
}

func TestCalculateCashFlow_Deterministic(t *testing.T) {
	entries := annotate(t,
		tx("1", Expense, "a", "1", "2025-01-01", ""),
		tx("2", Expense, "b", "1", "2025-01-01", ""),
		tx("3", Expense, "c", "1", "2025-01-01", ""),
		tx("4", Income, "房费收入", "9", "2025-01-01", ""),
	)

	first, err := json.Marshal(CalculateCashFlow(entries, d("10")))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := json.Marshal(CalculateCashFlow(entries, d("10")))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestResolveBeginningBalance(t *testing.T) {
	history := annotate(t,
		tx("1", Income, "房费收入", "500", "2025-01-01", "s1"),
		tx("2", Expense, "水电费", "200", "2025-01-31", "s1"),
		tx("3", Income, "房费收入", "999", "2025-02-01", "s1"),
	)
	opening := d("1000")
	openedOn := day("2025-01-01")

	t.Run("query before opening", func(t *testing.T) {
		assertDec(t, "1000", ResolveBeginningBalance(opening, openedOn, day("2024-12-01"), history))
	})
	t.Run("query on opening day", func(t *testing.T) {
		assertDec(t, "1000", ResolveBeginningBalance(opening, openedOn, openedOn, history))
	})
	t.Run("carry forward excludes start day", func(t *testing.T) {
		assertDec(t, "1300", ResolveBeginningBalance(opening, openedOn, day("2025-02-01"), history))
	})
	t.Run("carry forward includes all earlier days", func(t *testing.T) {
		assertDec(t, "2299", ResolveBeginningBalance(opening, openedOn, day("2025-03-01"), history))
	})
}
