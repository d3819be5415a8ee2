package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price >= 0.01" json:"price" validate:"gte=0.01"`
	CategoryID  *int64          `gorm:"index" json:"category_id"`
	Category    *Category       `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	IsActive    bool            `gorm:"not null" json:"is_active"`
	Stock       int64           `gorm:"not null;check:stock >= 0" json:"stock" validate:"gte=0"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Inventory  *Stock      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"inventory,omitempty"`
	CartItems  []CartItem  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Promotions []Promotion `gorm:"many2many:promotion_products;constraint:OnDelete:CASCADE" json:"promotions,omitempty"`
}

func (p Product) FormattedPrice() string {
	return FormatMoney(p.Price)
}

// 在庫あり
func (p Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) String() string {
	return p.Name
}
