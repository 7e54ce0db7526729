// Package report loads company data and runs the statement engine over it.
package report

import (
	"context"
	"errors"
	"fmt"

	"store-ledger/internal/repository"
	"store-ledger/internal/statement"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidRange is returned when a query has no usable date range.
var ErrInvalidRange = errors.New("report: invalid date range")

// Source is the read side of the repository the service needs.
type Source interface {
	ListStores(ctx context.Context, companyID uint, storeIDs []uint) ([]statement.Store, error)
	ListCategories(ctx context.Context, companyID uint) ([]statement.Category, error)
	ListTransactions(ctx context.Context, f repository.TransactionFilter) ([]statement.Transaction, error)
}

// Query selects a window and, optionally, a subset of stores. No stores means the
// whole company, company-level transactions included.
type Query struct {
	Start    statement.Date
	End      statement.Date
	StoreIDs []uint
}

// SingleStore reports whether exactly one store is selected.
func (q Query) SingleStore() bool { return len(q.StoreIDs) == 1 }

type Service struct {
	src Source
	log *zap.Logger
}

func NewService(src Source, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{src: src, log: log}
}

// dataset is everything one report needs, already annotated.
type dataset struct {
	rng     RangeCheck
	stores  []statement.Store
	entries []statement.Annotated
}

// load fetches stores, categories and the full history up to the range end, then
// annotates it. History before Start is kept for beginning-balance resolution.
func (s *Service) load(ctx context.Context, companyID uint, q Query) (dataset, error) {
	stores, err := s.src.ListStores(ctx, companyID, q.StoreIDs)
	if err != nil {
		return dataset{}, fmt.Errorf("load stores: %w", err)
	}

	rng, err := CheckRange(q.Start, q.End, stores)
	if err != nil {
		return dataset{}, err
	}

	categories, err := s.src.ListCategories(ctx, companyID)
	if err != nil {
		return dataset{}, fmt.Errorf("load categories: %w", err)
	}

	txs, err := s.src.ListTransactions(ctx, repository.TransactionFilter{
		CompanyID: companyID,
		StoreIDs:  q.StoreIDs,
		End:       rng.End,
	})
	if err != nil {
		return dataset{}, fmt.Errorf("load transactions: %w", err)
	}

	entries, err := statement.NewClassifier(categories).Annotate(txs)
	if err != nil {
		return dataset{}, fmt.Errorf("annotate transactions: %w", err)
	}

	s.log.Debug("report data loaded",
		zap.Uint("company_id", companyID),
		zap.Int("stores", len(stores)),
		zap.Int("transactions", len(entries)),
		zap.Stringer("start", rng.Start),
		zap.Stringer("end", rng.End),
		zap.Bool("adjusted", rng.Adjusted))

	return dataset{rng: rng, stores: stores, entries: entries}, nil
}

// beginningOf resolves one store's balance just before start. Stores without an
// opening date, or opening after end, start from zero, as in the consolidated breakdown.
func beginningOf(st statement.Store, start, end statement.Date, own []statement.Annotated) decimal.Decimal {
	switch statement.ClassifyStore(st, start, end) {
	case statement.StoreUntracked, statement.StoreNotYetOpened:
		return decimal.Zero
	}
	return statement.ResolveBeginningBalance(st.InitialBalance, st.InitialBalanceDate, start, own)
}
