package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description     *string         `gorm:"type:text" json:"description"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;check:discount_percent BETWEEN 0 AND 100" json:"discount_percent" validate:"gte=0,lte=100"`
	StartsAt        time.Time       `gorm:"not null;index" json:"starts_at"`
	EndsAt          time.Time       `gorm:"not null;index" json:"ends_at"`
	IsActive        bool            `gorm:"not null" json:"is_active"`
	Products        []Product       `gorm:"many2many:promotion_products;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// "15.00%"
func (p Promotion) FormattedDiscount() string {
	return p.DiscountPercent.StringFixed(2) + "%"
}

func (p Promotion) Duration() time.Duration {
	return p.EndsAt.Sub(p.StartsAt)
}

// tの時点で有効か（フラグと期間の両方）
func (p Promotion) ActiveAt(t time.Time) bool {
	return p.IsActive && !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}

func (p Promotion) String() string {
	return p.Name
}
