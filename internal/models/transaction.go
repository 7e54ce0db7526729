package models

import "time"

// Transaction 表示一笔收支流水
// 金额用分存储，避免浮点误差，比如 12.34 元 = 1234 分
// 分类名称冗余存储，分类改名时级联更新
type Transaction struct {
	ID                  uint      `gorm:"primaryKey"`
	CompanyID           uint      `gorm:"index:idx_tx_company_date;not null"`
	StoreID             *uint     `gorm:"index"`
	CategoryID          *uint     `gorm:"index"`
	Category            string    `gorm:"size:64;not null"`
	Type                string    `gorm:"size:16;not null"`
	AmountCent          int64     `gorm:"not null"`
	OccurredAt          time.Time `gorm:"index:idx_tx_company_date;not null"`
	CashFlowActivity    string    `gorm:"size:16"` // 单笔覆盖，空表示按分类
	TransactionNature   string    `gorm:"size:16"`
	IncludeInProfitLoss *bool
	Note                string    `gorm:"size:512"` // 备注密文（AES+base64）
	CreatedBy           uint      `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
