package report

import (
	"context"

	"store-ledger/internal/statement"

	"github.com/shopspring/decimal"
)

// CashFlowReport wraps a cash-flow statement with the window it covers.
// Consolidated is false when exactly one store was selected.
type CashFlowReport struct {
	Range        RangeCheck `json:"range"`
	Consolidated bool       `json:"consolidated"`
	statement.ConsolidatedCashFlow
}

// CashFlow builds the cash-flow statement for q. One store runs as a single entity;
// anything else is consolidated.
func (s *Service) CashFlow(ctx context.Context, companyID uint, q Query) (CashFlowReport, error) {
	ds, err := s.load(ctx, companyID, q)
	if err != nil {
		return CashFlowReport{}, err
	}
	start, end := ds.rng.Start, ds.rng.End

	if q.SingleStore() {
		st := ds.stores[0]
		status := statement.ClassifyStore(st, start, end)
		begin := beginningOf(st, start, end, ds.entries)
		cf := statement.CalculateCashFlow(statement.InRange(ds.entries, start, end), begin)
		return CashFlowReport{
			Range: ds.rng,
			ConsolidatedCashFlow: statement.ConsolidatedCashFlow{
				CashFlowStatement: cf,
				StoreBreakdown: []statement.StoreBreakdown{{
					StoreID:          st.ID,
					StoreName:        st.Name,
					Status:           status,
					IsNewStore:       status == statement.StoreNewlyOpened,
					BeginningBalance: begin,
					OpeningCapital:   decimal.Zero,
					NetCashFlow:      cf.Summary.NetIncrease,
					EndingBalance:    cf.Summary.EndingBalance,
				}},
				NewStoreCapitalInvestments: []statement.NewStoreCapitalInvestment{},
			},
		}, nil
	}

	cons, err := statement.Consolidate(ds.entries, ds.stores, start, end)
	if err != nil {
		return CashFlowReport{}, err
	}
	return CashFlowReport{Range: ds.rng, Consolidated: true, ConsolidatedCashFlow: cons}, nil
}

// MonthlyReport is the month-by-month cash-flow series for charting.
type MonthlyReport struct {
	Range  RangeCheck             `json:"range"`
	Points []statement.MonthPoint `json:"points"`
}

// MonthlyCashFlow returns one point per calendar month touched by the window.
func (s *Service) MonthlyCashFlow(ctx context.Context, companyID uint, q Query) (MonthlyReport, error) {
	ds, err := s.load(ctx, companyID, q)
	if err != nil {
		return MonthlyReport{}, err
	}

	var points []statement.MonthPoint
	if q.SingleStore() {
		st := ds.stores[0]
		points, err = statement.MonthlySeries(ds.entries, ds.rng.Start, ds.rng.End, st.InitialBalance, st.InitialBalanceDate)
	} else {
		points, err = statement.ConsolidatedMonthlySeries(ds.entries, ds.stores, ds.rng.Start, ds.rng.End)
	}
	if err != nil {
		return MonthlyReport{}, err
	}
	return MonthlyReport{Range: ds.rng, Points: points}, nil
}
