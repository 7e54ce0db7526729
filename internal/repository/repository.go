// Package repository loads and stores company records with gorm and converts them
// into the value types the statement engine works on.
package repository

import (
	"errors"
	"fmt"
	"strconv"

	"store-ledger/internal/models"
	"store-ledger/internal/statement"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrBeforeOpening 流水日期早于门店期初日期
	ErrBeforeOpening = errors.New("transaction date precedes store opening date")
	ErrDuplicate     = errors.New("duplicate record")
	ErrInvalid       = errors.New("invalid record")
)

// Repository wraps a gorm handle. EncryptKey protects transaction notes at rest.
type Repository struct {
	db         *gorm.DB
	encryptKey string
	log        *zap.Logger
}

func New(db *gorm.DB, encryptKey string, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{db: db, encryptKey: encryptKey, log: log}
}

// DB exposes the handle for callers that still query directly (auth).
func (r *Repository) DB() *gorm.DB { return r.db }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------- 金额与 ID 转换 ----------

// CentsToDecimal 分 -> 元
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func optIDString(id *uint) string {
	if id == nil {
		return ""
	}
	return idString(*id)
}

// ParseID is the inverse of the string ids handed to the engine.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	return uint(n), nil
}

func toStatementStore(s models.Store) statement.Store {
	out := statement.Store{
		ID:             idString(s.ID),
		Name:           s.Name,
		Status:         s.Status,
		InitialBalance: CentsToDecimal(s.InitialBalanceCent),
	}
	if s.InitialBalanceDate != nil {
		out.InitialBalanceDate = statement.DateOf(s.InitialBalanceDate.UTC())
	}
	return out
}

func toStatementCategory(c models.Category) statement.Category {
	return statement.Category{
		ID:                  idString(c.ID),
		Type:                statement.TxType(c.Type),
		Name:                c.Name,
		CashFlowActivity:    statement.Activity(c.CashFlowActivity),
		TransactionNature:   statement.Nature(c.TransactionNature),
		IncludeInProfitLoss: c.IncludeInProfitLoss,
		IsSystem:            c.IsSystem,
	}
}

func toStatementTransaction(t models.Transaction) statement.Transaction {
	return statement.Transaction{
		ID:                  idString(t.ID),
		Type:                statement.TxType(t.Type),
		Category:            t.Category,
		CategoryID:          optIDString(t.CategoryID),
		Amount:              CentsToDecimal(t.AmountCent),
		Date:                statement.DateOf(t.OccurredAt.UTC()),
		StoreID:             optIDString(t.StoreID),
		CashFlowActivity:    statement.Activity(t.CashFlowActivity),
		TransactionNature:   statement.Nature(t.TransactionNature),
		IncludeInProfitLoss: t.IncludeInProfitLoss,
	}
}
