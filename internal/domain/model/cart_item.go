package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// カートの明細。1カートにつき同じ商品は1行だけ。
type CartItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64           `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`
	Cart      *Cart           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProductID int64           `gorm:"not null;uniqueIndex:idx_cart_items_cart_product;index" json:"product_id"`
	Product   *Product        `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int64           `gorm:"not null;default:1;check:quantity >= 1" json:"quantity" validate:"gte=1"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price" validate:"gte=0"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
}

func (i CartItem) FormattedSubtotal() string {
	return FormatMoney(i.Subtotal)
}

func (i CartItem) ComputedSubtotal() decimal.Decimal {
	return lineSubtotal(i.Quantity, i.UnitPrice)
}

func (i CartItem) ProductName() string {
	if i.Product == nil {
		return ""
	}
	return i.Product.Name
}

func (i CartItem) String() string {
	owner := ""
	if i.Cart != nil {
		owner = i.Cart.CustomerName()
	}
	return fmt.Sprintf("%d x %s in Cart of %s", i.Quantity, i.ProductName(), owner)
}
