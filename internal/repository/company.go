package repository

import (
	"context"
	"fmt"
	"strings"

	"store-ledger/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateCompanyWithOwner 在一个事务里创建公司、所有者账号和系统分类。
// owner.CompanyID 会被回填。
func (r *Repository) CreateCompanyWithOwner(ctx context.Context, companyName string, owner *models.User) (models.Company, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return models.Company{}, fmt.Errorf("%w: company name is empty", ErrInvalid)
	}

	var company models.Company
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 不区分大小写唯一
		var count int64
		if err := tx.Model(&models.User{}).
			Where("LOWER(username) = LOWER(?)", owner.Username).
			Count(&count).Error; err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: username %q", ErrDuplicate, owner.Username)
		}

		company = models.Company{Name: companyName}
		if err := tx.Create(&company).Error; err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		owner.CompanyID = company.ID
		if owner.Role == "" {
			owner.Role = "owner"
		}
		if err := tx.Omit(clause.Associations).Create(owner).Error; err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
		return seedCategories(tx, company.ID)
	})
	if err != nil {
		return models.Company{}, err
	}

	r.log.Info("company registered", zap.Uint("company_id", company.ID), zap.Uint("owner_id", owner.ID))
	return company, nil
}

// ListCompanies 返回全部公司，供定时导出使用
func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var rows []models.Company
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return rows, nil
}
