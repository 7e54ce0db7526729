package models

import "time"

// Store 门店。期初余额用分存储；期初日期为空表示未设置期初，合并报表不计入期初余额
type Store struct {
	ID                 uint       `gorm:"primaryKey"`
	CompanyID          uint       `gorm:"index;not null"`
	Name               string     `gorm:"size:128;not null"`
	Status             string     `gorm:"size:16;not null;default:active"`
	InitialBalanceCent int64      `gorm:"not null;default:0"`
	InitialBalanceDate *time.Time `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Company Company `gorm:"constraint:OnDelete:CASCADE"`
}
