package repository

import (
	"context"
	"fmt"
	"strings"

	"store-ledger/internal/models"
	"store-ledger/internal/statement"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryInput 新建分类参数，分类属性留空表示按内置表处理
type CategoryInput struct {
	Type                statement.TxType
	Name                string
	CashFlowActivity    statement.Activity
	TransactionNature   statement.Nature
	IncludeInProfitLoss *bool
}

func (in CategoryInput) validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: category type %q", ErrInvalid, in.Type)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: category name is empty", ErrInvalid)
	}
	if in.CashFlowActivity != "" && !in.CashFlowActivity.Valid() {
		return fmt.Errorf("%w: cash flow activity %q", ErrInvalid, in.CashFlowActivity)
	}
	if in.TransactionNature != "" && !in.TransactionNature.Valid() {
		return fmt.Errorf("%w: transaction nature %q", ErrInvalid, in.TransactionNature)
	}
	return nil
}

func nameTaken(tx *gorm.DB, companyID uint, typ, name string, exceptID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.Category{}).
		Where("company_id = ? AND type = ? AND name = ?", companyID, typ, name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	return count > 0, nil
}

// CreateCategory 新建自定义分类，同一公司同一类型下名称唯一
func (r *Repository) CreateCategory(ctx context.Context, companyID uint, in CategoryInput) (models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}

	db := r.db.WithContext(ctx)
	taken, err := nameTaken(db, companyID, string(in.Type), in.Name, 0)
	if err != nil {
		return models.Category{}, err
	}
	if taken {
		return models.Category{}, fmt.Errorf("%w: category %q", ErrDuplicate, in.Name)
	}

	c := models.Category{
		CompanyID:           companyID,
		Type:                string(in.Type),
		Name:                in.Name,
		CashFlowActivity:    string(in.CashFlowActivity),
		TransactionNature:   string(in.TransactionNature),
		IncludeInProfitLoss: in.IncludeInProfitLoss,
	}
	if err := db.Create(&c).Error; err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// CategoryRows 返回公司全部分类（按类型、ID 排序）
func (r *Repository) CategoryRows(ctx context.Context, companyID uint) ([]models.Category, error) {
	var rows []models.Category
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("type ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}

// ListCategories 返回引擎使用的分类
func (r *Repository) ListCategories(ctx context.Context, companyID uint) ([]statement.Category, error) {
	rows, err := r.CategoryRows(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]statement.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, toStatementCategory(c))
	}
	return out, nil
}

// RenameCategory 修改分类名称，并在同一事务里级联更新历史流水上冗余的分类名
func (r *Repository) RenameCategory(ctx context.Context, companyID, id uint, newName string) (models.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Category{}, fmt.Errorf("%w: category name is empty", ErrInvalid)
	}

	var out models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ? AND id = ?", companyID, id).First(&out).Error; err != nil {
			return notFound(err)
		}
		if out.Name == newName {
			return nil
		}

		taken, err := nameTaken(tx, companyID, out.Type, newName, out.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: category %q", ErrDuplicate, newName)
		}

		res := tx.Model(&models.Transaction{}).
			Where("company_id = ? AND category_id = ?", companyID, out.ID).
			Update("category", newName)
		if res.Error != nil {
			return fmt.Errorf("cascade category name: %w", res.Error)
		}

		out.Name = newName
		if err := tx.Save(&out).Error; err != nil {
			return fmt.Errorf("save category: %w", err)
		}
		r.log.Info("category renamed",
			zap.Uint("category_id", out.ID),
			zap.Int64("transactions", res.RowsAffected))
		return nil
	})
	if err != nil {
		return models.Category{}, err
	}
	return out, nil
}

func (r *Repository) getCategory(ctx context.Context, companyID, id uint) (models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).Where("company_id = ? AND id = ?", companyID, id).First(&c).Error
	if err != nil {
		return models.Category{}, notFound(err)
	}
	return c, nil
}

// seedCategories 按内置表为新公司生成系统分类
func seedCategories(tx *gorm.DB, companyID uint) error {
	builtin := statement.BuiltinCategories()
	rows := make([]models.Category, 0, len(builtin))
	for _, b := range builtin {
		include := b.IncludeInProfitLoss
		rows = append(rows, models.Category{
			CompanyID:           companyID,
			Type:                string(b.Type),
			Name:                b.Name,
			CashFlowActivity:    string(b.Activity),
			TransactionNature:   string(b.Nature),
			IncludeInProfitLoss: &include,
			IsSystem:            true,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
