package report

import (
	"context"

	"store-ledger/internal/statement"
)

// ProfitLossReport wraps a P&L statement with the window it covers.
type ProfitLossReport struct {
	Range RangeCheck `json:"range"`
	statement.ProfitLossStatement
}

// ProfitLoss builds the P&L statement over the transactions inside the window.
func (s *Service) ProfitLoss(ctx context.Context, companyID uint, q Query) (ProfitLossReport, error) {
	ds, err := s.load(ctx, companyID, q)
	if err != nil {
		return ProfitLossReport{}, err
	}
	pl := statement.CalculateProfitLoss(statement.InRange(ds.entries, ds.rng.Start, ds.rng.End))
	return ProfitLossReport{Range: ds.rng, ProfitLossStatement: pl}, nil
}
