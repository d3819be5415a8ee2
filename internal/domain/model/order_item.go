package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// 注文明細。1注文につき同じ商品は1行だけ。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;uniqueIndex:idx_order_items_order_product" json:"order_id"`
	Order     *Order          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProductID int64           `gorm:"not null;uniqueIndex:idx_order_items_order_product;index" json:"product_id"`
	Product   *Product        `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int64           `gorm:"not null;default:1;check:quantity >= 1" json:"quantity" validate:"gte=1"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price" validate:"gte=0"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
}

func (i OrderItem) FormattedSubtotal() string {
	return FormatMoney(i.Subtotal)
}

// 数量 × 単価
func (i OrderItem) ComputedSubtotal() decimal.Decimal {
	return lineSubtotal(i.Quantity, i.UnitPrice)
}

func (i OrderItem) ProductName() string {
	if i.Product == nil {
		return ""
	}
	return i.Product.Name
}

func (i OrderItem) String() string {
	return fmt.Sprintf("%d x %s in Order #%d", i.Quantity, i.ProductName(), i.OrderID)
}
