package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 1顧客につき1つ
type Cart struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64      `gorm:"not null;uniqueIndex" json:"customer_id"`
	Customer   *Customer  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

func (c Cart) ItemCount() int {
	return len(c.Items)
}

// 明細の小計をそのまま合計する（税・丸めなし）
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}

func (c Cart) FormattedTotal() string {
	return FormatMoney(c.Total())
}

func (c Cart) CustomerName() string {
	if c.Customer == nil {
		return ""
	}
	return c.Customer.FullName()
}

func (c Cart) String() string {
	return "Cart of " + c.CustomerName()
}
