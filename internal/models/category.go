package models

import "time"

// Category represents an income/expense category with its statement classification.
// Empty CashFlowActivity / TransactionNature and nil IncludeInProfitLoss defer to the built-in table.
type Category struct {
	ID                  uint   `gorm:"primaryKey"`
	CompanyID           uint   `gorm:"uniqueIndex:idx_category_name;not null"`
	Type                string `gorm:"size:16;uniqueIndex:idx_category_name;not null"` // income / expense
	Name                string `gorm:"size:64;uniqueIndex:idx_category_name;not null"`
	CashFlowActivity    string `gorm:"size:16"`
	TransactionNature   string `gorm:"size:16"`
	IncludeInProfitLoss *bool
	IsSystem            bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
