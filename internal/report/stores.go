package report

import (
	"context"
	"fmt"

	"store-ledger/internal/repository"
	"store-ledger/internal/statement"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// comparisonWorkers bounds how many stores are computed at once.
const comparisonWorkers = 4

// StoreRow is one store's cash-flow and P&L figures for the comparison view.
type StoreRow struct {
	StoreID          string                `json:"storeId"`
	StoreName        string                `json:"storeName"`
	Status           statement.StoreStatus `json:"status"`
	BeginningBalance decimal.Decimal       `json:"beginningBalance"`
	TotalInflow      decimal.Decimal       `json:"totalInflow"`
	TotalOutflow     decimal.Decimal       `json:"totalOutflow"`
	NetCashFlow      decimal.Decimal       `json:"netCashFlow"`
	EndingBalance    decimal.Decimal       `json:"endingBalance"`
	Revenue          decimal.Decimal       `json:"revenue"`
	Cost             decimal.Decimal       `json:"cost"`
	OperatingProfit  decimal.Decimal       `json:"operatingProfit"`
	NetProfit        decimal.Decimal       `json:"netProfit"`
}

// ComparisonReport lists the selected stores in store order.
type ComparisonReport struct {
	Range  RangeCheck `json:"range"`
	Stores []StoreRow `json:"stores"`
}

// StoreComparison computes every selected store as its own entity. Stores are loaded
// and computed concurrently; the first failure cancels the rest.
func (s *Service) StoreComparison(ctx context.Context, companyID uint, q Query) (ComparisonReport, error) {
	stores, err := s.src.ListStores(ctx, companyID, q.StoreIDs)
	if err != nil {
		return ComparisonReport{}, fmt.Errorf("load stores: %w", err)
	}
	rng, err := CheckRange(q.Start, q.End, stores)
	if err != nil {
		return ComparisonReport{}, err
	}
	categories, err := s.src.ListCategories(ctx, companyID)
	if err != nil {
		return ComparisonReport{}, fmt.Errorf("load categories: %w", err)
	}
	classifier := statement.NewClassifier(categories)

	rows := make([]StoreRow, len(stores))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(comparisonWorkers)
	for i, st := range stores {
		i, st := i, st
		g.Go(func() error {
			row, err := s.storeRow(gctx, companyID, classifier, st, rng)
			if err != nil {
				return fmt.Errorf("store %s: %w", st.ID, err)
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ComparisonReport{}, err
	}

	s.log.Debug("store comparison built", zap.Uint("company_id", companyID), zap.Int("stores", len(rows)))
	return ComparisonReport{Range: rng, Stores: rows}, nil
}

func (s *Service) storeRow(ctx context.Context, companyID uint, c *statement.Classifier, st statement.Store, rng RangeCheck) (StoreRow, error) {
	id, err := repository.ParseID(st.ID)
	if err != nil {
		return StoreRow{}, err
	}
	txs, err := s.src.ListTransactions(ctx, repository.TransactionFilter{
		CompanyID: companyID,
		StoreIDs:  []uint{id},
		End:       rng.End,
	})
	if err != nil {
		return StoreRow{}, err
	}
	entries, err := c.Annotate(txs)
	if err != nil {
		return StoreRow{}, err
	}

	window := statement.InRange(entries, rng.Start, rng.End)
	cf := statement.CalculateCashFlow(window, beginningOf(st, rng.Start, rng.End, entries))
	pl := statement.CalculateProfitLoss(window)

	return StoreRow{
		StoreID:          st.ID,
		StoreName:        st.Name,
		Status:           statement.ClassifyStore(st, rng.Start, rng.End),
		BeginningBalance: cf.Summary.BeginningBalance,
		TotalInflow:      cf.Summary.TotalInflow,
		TotalOutflow:     cf.Summary.TotalOutflow,
		NetCashFlow:      cf.Summary.NetIncrease,
		EndingBalance:    cf.Summary.EndingBalance,
		Revenue:          pl.Revenue.Total,
		Cost:             pl.Cost.Total,
		OperatingProfit:  pl.OperatingProfit,
		NetProfit:        pl.NetProfit,
	}, nil
}
