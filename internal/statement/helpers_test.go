package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) Date {
	dt, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return dt
}

func tx(id string, typ TxType, category, amount, date, store string) Transaction {
	return Transaction{
		ID:       id,
		Type:     typ,
		Category: category,
		Amount:   d(amount),
		Date:     day(date),
		StoreID:  store,
	}
}

func boolPtr(b bool) *bool { return &b }

func annotate(t *testing.T, txs ...Transaction) []Annotated {
	t.Helper()
	out, err := NewClassifier(nil).Annotate(txs)
	require.NoError(t, err)
	return out
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// assertBalanceIdentity checks ending = beginning + (in - out) and that totals match sections.
func assertBalanceIdentity(t *testing.T, st CashFlowStatement) {
	t.Helper()
	in := st.Operating.SubtotalInflow.Add(st.Investing.SubtotalInflow).Add(st.Financing.SubtotalInflow)
	out := st.Operating.SubtotalOutflow.Add(st.Investing.SubtotalOutflow).Add(st.Financing.SubtotalOutflow)
	assert.True(t, in.Equal(st.Summary.TotalInflow), "total inflow %s != sections %s", st.Summary.TotalInflow, in)
	assert.True(t, out.Equal(st.Summary.TotalOutflow), "total outflow %s != sections %s", st.Summary.TotalOutflow, out)
	want := st.Summary.BeginningBalance.Add(st.Summary.TotalInflow.Sub(st.Summary.TotalOutflow))
	assert.True(t, want.Equal(st.Summary.EndingBalance), "ending %s != %s", st.Summary.EndingBalance, want)
}
