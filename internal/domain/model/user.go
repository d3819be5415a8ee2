package model

import (
	"strings"
	"time"
)

// 認証側が持つユーザー。顧客はuser_idで参照するだけ。
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"type:varchar(150);not null" json:"first_name" validate:"max=150"`
	LastName     string    `gorm:"type:varchar(150);not null" json:"last_name" validate:"max=150"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" validate:"required,email,max=254"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 姓名をスペースでつなぐ（片方だけでも余計な空白は残さない）
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
