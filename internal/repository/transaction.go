package repository

import (
	"context"
	"fmt"

	"store-ledger/internal/models"
	"store-ledger/internal/statement"
	"store-ledger/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TransactionFilter 查询条件。Start/End 为零值表示不限；StoreIDs 为空表示全部门店（含公司级流水）
type TransactionFilter struct {
	CompanyID  uint
	StoreIDs   []uint
	CategoryID uint
	Type       statement.TxType
	Start      statement.Date
	End        statement.Date
}

func (f TransactionFilter) apply(q *gorm.DB) *gorm.DB {
	q = q.Where("company_id = ?", f.CompanyID)
	if len(f.StoreIDs) > 0 {
		q = q.Where("store_id IN ?", f.StoreIDs)
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}
	if !f.Start.IsZero() {
		q = q.Where("occurred_at >= ?", f.Start.Time())
	}
	if !f.End.IsZero() {
		q = q.Where("occurred_at < ?", f.End.AddDays(1).Time())
	}
	return q
}

// ListTransactions 返回引擎使用的流水，按日期、ID 升序
func (r *Repository) ListTransactions(ctx context.Context, f TransactionFilter) ([]statement.Transaction, error) {
	var rows []models.Transaction
	if err := f.apply(r.db.WithContext(ctx)).
		Order("occurred_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	out := make([]statement.Transaction, 0, len(rows))
	for _, t := range rows {
		out = append(out, toStatementTransaction(t))
	}
	return out, nil
}

// TransactionView 接口返回的流水，备注已解密
type TransactionView struct {
	ID                  uint   `json:"id"`
	StoreID             *uint  `json:"store_id"`
	CategoryID          *uint  `json:"category_id"`
	Category            string `json:"category"`
	Type                string `json:"type"`
	Amount              string `json:"amount"`
	Date                string `json:"date"`
	CashFlowActivity    string `json:"cash_flow_activity,omitempty"`
	TransactionNature   string `json:"transaction_nature,omitempty"`
	IncludeInProfitLoss *bool  `json:"include_in_profit_loss,omitempty"`
	Note                string `json:"note"`
}

func (r *Repository) view(t models.Transaction) TransactionView {
	note, err := util.DecryptField(r.encryptKey, t.Note)
	if err != nil {
		r.log.Warn("decrypt note failed", zap.Uint("transaction_id", t.ID), zap.Error(err))
		note = ""
	}
	return TransactionView{
		ID:                  t.ID,
		StoreID:             t.StoreID,
		CategoryID:          t.CategoryID,
		Category:            t.Category,
		Type:                t.Type,
		Amount:              CentsToDecimal(t.AmountCent).StringFixed(2),
		Date:                statement.DateOf(t.OccurredAt.UTC()).String(),
		CashFlowActivity:    t.CashFlowActivity,
		TransactionNature:   t.TransactionNature,
		IncludeInProfitLoss: t.IncludeInProfitLoss,
		Note:                note,
	}
}

// PageTransactions 分页查询流水，按日期倒序
func (r *Repository) PageTransactions(ctx context.Context, f TransactionFilter, page, size int) ([]TransactionView, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&models.Transaction{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	var rows []models.Transaction
	if err := f.apply(r.db.WithContext(ctx)).
		Order("occurred_at DESC, id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("page transactions: %w", err)
	}

	out := make([]TransactionView, 0, len(rows))
	for _, t := range rows {
		out = append(out, r.view(t))
	}
	return out, total, nil
}

// TransactionInput 新建流水参数。类型跟随分类；分类属性可单笔覆盖
type TransactionInput struct {
	StoreID             *uint
	CategoryID          uint
	AmountCent          int64
	Date                statement.Date
	Note                string
	CashFlowActivity    statement.Activity
	TransactionNature   statement.Nature
	IncludeInProfitLoss *bool
	CreatedBy           uint
}

// CreateTransaction 记一笔流水。门店设置了期初日期时，早于该日期的流水会被拒绝。
func (r *Repository) CreateTransaction(ctx context.Context, companyID uint, in TransactionInput) (TransactionView, error) {
	if in.AmountCent <= 0 {
		return TransactionView{}, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}
	if in.Date.IsZero() {
		return TransactionView{}, fmt.Errorf("%w: date is required", ErrInvalid)
	}
	if in.CashFlowActivity != "" && !in.CashFlowActivity.Valid() {
		return TransactionView{}, fmt.Errorf("%w: cash flow activity %q", ErrInvalid, in.CashFlowActivity)
	}
	if in.TransactionNature != "" && !in.TransactionNature.Valid() {
		return TransactionView{}, fmt.Errorf("%w: transaction nature %q", ErrInvalid, in.TransactionNature)
	}

	cat, err := r.getCategory(ctx, companyID, in.CategoryID)
	if err != nil {
		return TransactionView{}, fmt.Errorf("category %d: %w", in.CategoryID, err)
	}

	if in.StoreID != nil {
		s, err := r.getStore(ctx, companyID, *in.StoreID)
		if err != nil {
			return TransactionView{}, fmt.Errorf("store %d: %w", *in.StoreID, err)
		}
		if opened := openedOn(s); !opened.IsZero() && in.Date.Before(opened) {
			return TransactionView{}, fmt.Errorf("%w: %s is before %s opened on %s",
				ErrBeforeOpening, in.Date, s.Name, opened)
		}
	}

	note, err := util.EncryptField(r.encryptKey, in.Note)
	if err != nil {
		return TransactionView{}, fmt.Errorf("encrypt note: %w", err)
	}

	t := models.Transaction{
		CompanyID:           companyID,
		StoreID:             in.StoreID,
		CategoryID:          &cat.ID,
		Category:            cat.Name,
		Type:                cat.Type,
		AmountCent:          in.AmountCent,
		OccurredAt:          in.Date.Time(),
		CashFlowActivity:    string(in.CashFlowActivity),
		TransactionNature:   string(in.TransactionNature),
		IncludeInProfitLoss: in.IncludeInProfitLoss,
		Note:                note,
		CreatedBy:           in.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return TransactionView{}, fmt.Errorf("create transaction: %w", err)
	}
	return r.view(t), nil
}

// DeleteTransaction 删除流水
func (r *Repository) DeleteTransaction(ctx context.Context, companyID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return fmt.Errorf("delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
