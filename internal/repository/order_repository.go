package repository

import (
	"context"

	"backoffice/internal/domain/model"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	// 明細・商品・支払い・顧客を読み込む
	FindByID(ctx context.Context, id int64) (model.Order, error)
	// 新しい順
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

type OrderItemRepository interface {
	// 同じ(order, product)はErrDuplicate
	Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error)
	FindByID(ctx context.Context, id int64) (model.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentRepository interface {
	// 1注文1件（2件目はErrDuplicate）
	Create(ctx context.Context, p model.Payment) (model.Payment, error)
	FindByID(ctx context.Context, id int64) (model.Payment, error)
	// 注文→顧客→ユーザーも読み込む
	FindByOrderID(ctx context.Context, orderID int64) (model.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status model.PaymentStatus) error
}
