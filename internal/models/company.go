package models

import "time"

// Company 是多门店经营主体，所有门店、分类、流水都归属于一个公司
type Company struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:128;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
