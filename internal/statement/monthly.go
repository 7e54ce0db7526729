package statement

import "github.com/shopspring/decimal"

// monthStarts lists the first day of every calendar month touched by [start, end].
func monthStarts(start, end Date) []Date {
	var out []Date
	for m := start.MonthStart(); !m.After(end); m = m.NextMonth() {
		out = append(out, m)
	}
	return out
}

func bucketByMonth(entries []Annotated, from, to Date) map[string][]Annotated {
	out := make(map[string][]Annotated)
	for _, e := range entries {
		if e.Date.Between(from, to) {
			key := e.Date.MonthKey()
			out[key] = append(out[key], e)
		}
	}
	return out
}

// series walks the months in order, carrying each ending balance into the next month.
func series(months []Date, buckets map[string][]Annotated, capital map[string][]decimal.Decimal, beginning decimal.Decimal) []MonthPoint {
	points := make([]MonthPoint, 0, len(months))
	balance := beginning
	for _, m := range months {
		key := m.MonthKey()
		b := newCashFlowBuilder()
		for _, e := range buckets[key] {
			b.addEntry(e)
		}
		for _, amount := range capital[key] {
			b.addCapital(amount)
		}
		st := b.build(balance)
		points = append(points, MonthPoint{
			Month:            key,
			Operating:        st.Operating.NetCashFlow,
			Investing:        st.Investing.NetCashFlow,
			Financing:        st.Financing.NetCashFlow,
			NetIncrease:      st.Summary.NetIncrease,
			BeginningBalance: st.Summary.BeginningBalance,
			EndingBalance:    st.Summary.EndingBalance,
		})
		balance = st.Summary.EndingBalance
	}
	return points
}

// MonthlySeries returns one point per calendar month touched by [start, end] for a
// single entity. Months are whole calendar months. The first month's beginning balance
// is resolved against its first day; later months carry the previous ending balance.
// A zero openingDate means no opening balance is tracked and the series starts at 0.
func MonthlySeries(entries []Annotated, start, end Date, opening decimal.Decimal, openingDate Date) ([]MonthPoint, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	months := monthStarts(start, end)
	first := months[0]

	beginning := decimal.Zero
	if !openingDate.IsZero() {
		beginning = ResolveBeginningBalance(opening, openingDate, first, entries)
	}
	buckets := bucketByMonth(entries, first, end.MonthEnd())
	return series(months, buckets, nil, beginning), nil
}

// ConsolidatedMonthlySeries is MonthlySeries over several stores. Stores opened before
// the first month seed the beginning balance; stores opening later add their opening
// capital to the financing flow of their opening month.
func ConsolidatedMonthlySeries(entries []Annotated, stores []Store, start, end Date) ([]MonthPoint, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	months := monthStarts(start, end)
	first, last := months[0], end.MonthEnd()

	history := groupByStore(entries)
	beginning := decimal.Zero
	capital := make(map[string][]decimal.Decimal)
	for _, s := range stores {
		switch ClassifyStore(s, first, last) {
		case StorePreExisting:
			beginning = beginning.Add(ResolveBeginningBalance(s.InitialBalance, s.InitialBalanceDate, first, history[s.ID]))
		case StoreNewlyOpened:
			if s.InitialBalance.IsPositive() {
				key := s.InitialBalanceDate.MonthKey()
				capital[key] = append(capital[key], s.InitialBalance)
			}
		}
	}

	buckets := bucketByMonth(entries, first, last)
	return series(months, buckets, capital, beginning), nil
}
