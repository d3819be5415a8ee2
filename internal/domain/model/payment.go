package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRejected PaymentStatus = "rejected"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPaid:     "Paid",
	PaymentStatusPending:  "Pending",
	PaymentStatusRejected: "Rejected",
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

func (s PaymentStatus) Label() string {
	return paymentStatusLabels[s]
}

// 支払い（1注文に1件）
type Payment struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;uniqueIndex" json:"order_id"`
	Order         *Order          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount" validate:"gte=0"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"payment_status"`
	Method        string          `gorm:"type:varchar(50);not null" json:"method" validate:"required,max=50"`
	TransactionID *string         `gorm:"type:varchar(100)" json:"transaction_id" validate:"omitempty,max=100"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (p Payment) FormattedAmount() string {
	return FormatMoney(p.Amount)
}

// 注文→顧客→ユーザーの表示名
func (p Payment) CustomerName() string {
	if p.Order == nil {
		return ""
	}
	return p.Order.CustomerName()
}

func (p Payment) String() string {
	return fmt.Sprintf("Payment for Order #%d - Status: %s", p.OrderID, p.Status.Label())
}
