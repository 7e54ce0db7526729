package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySeries_EmptyWindowCarriesOpeningBalance(t *testing.T) {
	points, err := MonthlySeries(nil, day("2025-01-01"), day("2025-03-31"), d("1000"), day("2024-06-01"))
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, []string{points[0].Month, points[1].Month, points[2].Month})
	for i, p := range points {
		assertDec(t, "1000", p.BeginningBalance)
		assertDec(t, "1000", p.EndingBalance)
		assertDec(t, "0", p.NetIncrease)
		if i > 0 {
			assert.True(t, p.BeginningBalance.Equal(points[i-1].EndingBalance))
		}
	}
}

func TestMonthlySeries_CarryForward(t *testing.T) {
	entries := annotate(t,
		tx("0", Income, "房费收入", "200", "2024-12-20", "s"),
		tx("1", Income, "房费收入", "1000", "2025-01-10", "s"),
		tx("2", Expense, "设备购置", "300", "2025-01-11", "s"),
		tx("3", Income, "借款收入", "500", "2025-03-02", "s"),
		tx("4", Expense, "房租", "50", "2025-03-31", "s"),
		tx("5", Income, "房费收入", "77", "2025-04-01", "s"),
	)

	points, err := MonthlySeries(entries, day("2025-01-15"), day("2025-03-10"), d("1000"), day("2024-12-01"))
	require.NoError(t, err)
	require.Len(t, points, 3)

	jan, feb, mar := points[0], points[1], points[2]
	assertDec(t, "1200", jan.BeginningBalance)
	assertDec(t, "1000", jan.Operating)
	assertDec(t, "-300", jan.Investing)
	assertDec(t, "1900", jan.EndingBalance)

	assertDec(t, "1900", feb.BeginningBalance)
	assertDec(t, "0", feb.NetIncrease)
	assertDec(t, "1900", feb.EndingBalance)

	assertDec(t, "500", mar.Financing)
	assertDec(t, "-50", mar.Operating)
	assertDec(t, "2350", mar.EndingBalance)
}

func TestMonthlySeries_UntrackedOpeningStartsAtZero(t *testing.T) {
	entries := annotate(t, tx("1", Income, "房费收入", "10", "2025-05-03", ""))

	points, err := MonthlySeries(entries, day("2025-05-01"), day("2025-05-31"), d("999"), Date{})
	require.NoError(t, err)

	require.Len(t, points, 1)
	assertDec(t, "0", points[0].BeginningBalance)
	assertDec(t, "10", points[0].EndingBalance)
}

func TestMonthlySeries_SingleDayRange(t *testing.T) {
	points, err := MonthlySeries(nil, day("2025-02-28"), day("2025-02-28"), d("5"), day("2025-01-01"))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2025-02", points[0].Month)
}

func TestMonthlySeries_CrossesYearBoundary(t *testing.T) {
	points, err := MonthlySeries(nil, day("2024-11-20"), day("2025-02-03"), d("0"), Date{})
	require.NoError(t, err)

	months := make([]string, 0, len(points))
	for _, p := range points {
		months = append(months, p.Month)
	}
	assert.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-02"}, months)
}

func TestConsolidatedMonthlySeries_NewStoreCapitalInItsMonth(t *testing.T) {
	stores := []Store{
		store("A", "A", "5000", "2024-01-01"),
		store("B", "B", "2000", "2025-02-15"),
	}
	entries := annotate(t,
		tx("1", Income, "房费收入", "100", "2024-12-01", "A"),
		tx("2", Income, "房费收入", "300", "2025-01-05", "A"),
		tx("3", Expense, "水电费", "50", "2025-02-20", "B"),
	)

	points, err := ConsolidatedMonthlySeries(entries, stores, day("2025-01-01"), day("2025-02-28"))
	require.NoError(t, err)
	require.Len(t, points, 2)

	assertDec(t, "5100", points[0].BeginningBalance)
	assertDec(t, "5400", points[0].EndingBalance)
	assertDec(t, "0", points[0].Financing)

	assertDec(t, "2000", points[1].Financing)
	assertDec(t, "-50", points[1].Operating)
	assertDec(t, "7350", points[1].EndingBalance)

	// The last point agrees with a consolidated statement over the same window.
	cons, err := Consolidate(entries, stores, day("2025-01-01"), day("2025-02-28"))
	require.NoError(t, err)
	assert.True(t, cons.Summary.EndingBalance.Equal(points[1].EndingBalance))
}

func TestConsolidatedMonthlySeries_CapitalRowNotMergedWithCategory(t *testing.T) {
	stores := []Store{store("B", "B", "2000", "2025-01-10")}
	same := tx("1", Income, CapitalInvestmentCategory, "300", "2025-01-12", "B")
	same.CashFlowActivity = Financing
	entries := annotate(t, same)

	points, err := ConsolidatedMonthlySeries(entries, stores, day("2025-01-01"), day("2025-01-31"))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assertDec(t, "2300", points[0].Financing)
	assertDec(t, "2300", points[0].EndingBalance)
}
