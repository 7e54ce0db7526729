package statement

import "github.com/shopspring/decimal"

// ClassifyStore places a store relative to [start, end]. A store whose books open on
// start has no "day before" balance to carry, so it counts as newly opened.
func ClassifyStore(s Store, start, end Date) StoreStatus {
	opened := s.InitialBalanceDate
	switch {
	case opened.IsZero():
		return StoreUntracked
	case opened.Before(start):
		return StorePreExisting
	case opened.After(end):
		return StoreNotYetOpened
	default:
		return StoreNewlyOpened
	}
}

func groupByStore(entries []Annotated) map[string][]Annotated {
	out := make(map[string][]Annotated)
	for _, e := range entries {
		out[e.StoreID] = append(out[e.StoreID], e)
	}
	return out
}

// Consolidate combines stores into one statement for [start, end].
//
// entries must hold the full history of every store (not only the window) so that
// pre-existing stores can carry their balance forward. The consolidated beginning
// balance only counts pre-existing stores; opening capital of stores that open
// inside the window is reported as a financing inflow and in NewStoreCapitalInvestments.
func Consolidate(entries []Annotated, stores []Store, start, end Date) (ConsolidatedCashFlow, error) {
	if err := checkRange(start, end); err != nil {
		return ConsolidatedCashFlow{}, err
	}

	b := newCashFlowBuilder()
	for _, e := range InRange(entries, start, end) {
		b.addEntry(e)
	}

	history := groupByStore(entries)
	beginning := decimal.Zero
	breakdown := make([]StoreBreakdown, 0, len(stores))
	capital := make([]NewStoreCapitalInvestment, 0)

	for _, s := range stores {
		own := history[s.ID]
		status := ClassifyStore(s, start, end)
		row := StoreBreakdown{
			StoreID:          s.ID,
			StoreName:        s.Name,
			Status:           status,
			BeginningBalance: decimal.Zero,
			OpeningCapital:   decimal.Zero,
			NetCashFlow:      CalculateCashFlow(InRange(own, start, end), decimal.Zero).Summary.NetIncrease,
		}

		switch status {
		case StorePreExisting:
			row.BeginningBalance = ResolveBeginningBalance(s.InitialBalance, s.InitialBalanceDate, start, own)
			beginning = beginning.Add(row.BeginningBalance)
		case StoreNewlyOpened:
			row.IsNewStore = true
			if s.InitialBalance.IsPositive() {
				row.OpeningCapital = s.InitialBalance
				capital = append(capital, NewStoreCapitalInvestment{
					StoreID:   s.ID,
					StoreName: s.Name,
					Amount:    s.InitialBalance,
					Date:      s.InitialBalanceDate,
				})
				b.addCapital(s.InitialBalance)
			}
		}

		row.EndingBalance = row.BeginningBalance.Add(row.OpeningCapital).Add(row.NetCashFlow)
		breakdown = append(breakdown, row)
	}

	return ConsolidatedCashFlow{
		CashFlowStatement:          b.build(beginning),
		StoreBreakdown:             breakdown,
		NewStoreCapitalInvestments: capital,
	}, nil
}
