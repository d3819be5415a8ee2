package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:    "Pending",
	OrderStatusProcessing: "Processing",
	OrderStatusShipped:    "Shipped",
	OrderStatusDelivered:  "Delivered",
	OrderStatusCancelled:  "Cancelled",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	return orderStatusLabels[s]
}

// 注文
// totalは明細の小計の合計を保存しておく（DB制約はない）。
type Order struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID         int64           `gorm:"not null;index" json:"customer_id"`
	Customer           *Customer       `gorm:"constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Status             OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"order_status"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total" validate:"gte=0"`
	DeliveryAddress    string          `gorm:"type:varchar(255);not null" json:"delivery_address" validate:"required,max=255"`
	DeliveryPostalCode string          `gorm:"type:varchar(9);not null" json:"delivery_postal_code" validate:"required,max=9"`
	CreatedAt          time.Time       `gorm:"not null;autoCreateTime;index" json:"created_at"`

	Items   []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payment *Payment    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
}

// 読み込み済みの明細数
func (o Order) ItemCount() int {
	return len(o.Items)
}

func (o Order) FormattedTotal() string {
	return FormatMoney(o.Total)
}

// 明細の小計を足し直した値（保存済みtotalとは別）
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}

func (o Order) CustomerName() string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.FullName()
}

func (o Order) String() string {
	return fmt.Sprintf("Order #%d - %s", o.ID, o.CustomerName())
}
