package model

import "time"

// 顧客。ユーザーが削除されたら一緒に消える。
type Customer struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64      `gorm:"not null;uniqueIndex" json:"user_id"`
	User       *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Address    string     `gorm:"type:varchar(255);not null" json:"address" validate:"required,max=255"`
	City       string     `gorm:"type:varchar(100);not null" json:"city" validate:"required,max=100"`
	State      StateCode  `gorm:"type:varchar(2);not null" json:"state" validate:"br_state"`
	PostalCode string     `gorm:"type:varchar(9);not null" json:"postal_code" validate:"required,max=9"`
	Phone      *string    `gorm:"type:varchar(20)" json:"phone" validate:"omitempty,max=20"`
	BirthDate  *time.Time `gorm:"type:date" json:"birth_date"`

	Cart    *Cart    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders  []Order  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Reviews []Review `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// 表示名はユーザー側に任せる
func (c Customer) FullName() string {
	if c.User == nil {
		return ""
	}
	return c.User.FullName()
}

// todayの時点の満年齢。誕生日未設定ならnil。
// 今年の誕生日（月日）がまだなら1歳引く。
func (c Customer) Age(today time.Time) *int {
	if c.BirthDate == nil {
		return nil
	}
	b := *c.BirthDate
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	return &age
}

func (c Customer) String() string {
	return c.FullName()
}
