package repository

import (
	"context"
	"fmt"
	"strings"

	"store-ledger/internal/models"
	"store-ledger/internal/statement"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// StoreInput 新建门店参数。OpeningDate 为零值表示不跟踪期初余额
type StoreInput struct {
	Name               string
	Status             string
	InitialBalanceCent int64
	OpeningDate        statement.Date
}

// CreateStore 新建门店
func (r *Repository) CreateStore(ctx context.Context, companyID uint, in StoreInput) (models.Store, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Store{}, fmt.Errorf("%w: store name is empty", ErrInvalid)
	}
	if in.InitialBalanceCent < 0 {
		return models.Store{}, fmt.Errorf("%w: initial balance must not be negative", ErrInvalid)
	}
	status := in.Status
	if status == "" {
		status = "active"
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Store{}).
		Where("company_id = ? AND name = ?", companyID, name).
		Count(&count).Error; err != nil {
		return models.Store{}, fmt.Errorf("count stores: %w", err)
	}
	if count > 0 {
		return models.Store{}, fmt.Errorf("%w: store %q", ErrDuplicate, name)
	}

	s := models.Store{
		CompanyID:          companyID,
		Name:               name,
		Status:             status,
		InitialBalanceCent: in.InitialBalanceCent,
	}
	if !in.OpeningDate.IsZero() {
		t := in.OpeningDate.Time()
		s.InitialBalanceDate = &t
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&s).Error; err != nil {
		return models.Store{}, fmt.Errorf("create store: %w", err)
	}
	r.log.Debug("store created", zap.Uint("company_id", companyID), zap.Uint("store_id", s.ID))
	return s, nil
}

// StoreRows 返回公司门店记录（按 ID 排序），storeIDs 非空时只返回这些门店
func (r *Repository) StoreRows(ctx context.Context, companyID uint, storeIDs []uint) ([]models.Store, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if len(storeIDs) > 0 {
		q = q.Where("id IN ?", storeIDs)
	}
	var rows []models.Store
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	if len(storeIDs) > 0 && len(rows) != len(storeIDs) {
		return nil, fmt.Errorf("%w: some stores do not belong to company %d", ErrNotFound, companyID)
	}
	return rows, nil
}

// ListStores 返回引擎使用的门店
func (r *Repository) ListStores(ctx context.Context, companyID uint, storeIDs []uint) ([]statement.Store, error) {
	rows, err := r.StoreRows(ctx, companyID, storeIDs)
	if err != nil {
		return nil, err
	}
	out := make([]statement.Store, 0, len(rows))
	for _, s := range rows {
		out = append(out, toStatementStore(s))
	}
	return out, nil
}

func (r *Repository) getStore(ctx context.Context, companyID, id uint) (models.Store, error) {
	var s models.Store
	err := r.db.WithContext(ctx).Where("company_id = ? AND id = ?", companyID, id).First(&s).Error
	if err != nil {
		return models.Store{}, notFound(err)
	}
	return s, nil
}

// openedOn 返回门店期初日期，未设置时为零值
func openedOn(s models.Store) statement.Date {
	if s.InitialBalanceDate == nil {
		return statement.Date{}
	}
	return statement.DateOf(s.InitialBalanceDate.UTC())
}

