package models

import "time"

// User represents application user. Every user belongs to exactly one company.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	CompanyID    uint      `gorm:"index;not null"`
	Username     string    `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	DisplayName  string    `gorm:"size:64"`
	Role         string    `gorm:"size:16;not null;default:owner"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FailedLoginAttempts int        `gorm:"default:0"` // 连续登录失败次数
	LockedUntil         *time.Time `gorm:"index"`     // 账户锁定到期时间
	LastLoginAt         *time.Time // 最近登录时间
	LastLoginIP         string     `gorm:"size:64"` // 最近登录 IP

	Company Company `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
