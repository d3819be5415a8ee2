package usecase

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderUsecase は注文・明細・支払いの管理。
// 合計は明細の小計から計算して保存する（呼び出し側からは受け取らない）。
type OrderUsecase struct {
	tx       repo.TransactionManager
	orders   repo.OrderRepository
	items    repo.OrderItemRepository
	payments repo.PaymentRepository
	logger   *zap.Logger
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	payments repo.PaymentRepository,
	logger *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:       tx,
		orders:   orders,
		items:    items,
		payments: payments,
		logger:   orNop(logger),
	}
}

type CreateOrderInput struct {
	CustomerID         int64
	DeliveryAddress    string
	DeliveryPostalCode string
	// 空ならpending
	Status model.OrderStatus
}

type OrderItemInput struct {
	ProductID int64
	// 0なら1
	Quantity int64
	// nilなら商品の現在価格
	UnitPrice *decimal.Decimal
}

type PaymentInput struct {
	// nilなら注文の合計
	Amount        *decimal.Decimal
	Method        string
	TransactionID *string
	// 空ならpending
	Status model.PaymentStatus
}

// 合計0の注文を作る
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	o := model.Order{
		CustomerID:         in.CustomerID,
		Status:             in.Status,
		Total:              decimal.Zero,
		DeliveryAddress:    strings.TrimSpace(in.DeliveryAddress),
		DeliveryPostalCode: strings.TrimSpace(in.DeliveryPostalCode),
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	if err := validator.Struct(o); err != nil {
		return model.Order{}, validationError(err)
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		err = repoError(u.logger, "create order", err, zap.Int64("customer_id", in.CustomerID))
		return model.Order{}, withField(err, CodeReference, "customer_id")
	}
	return created, nil
}

// 明細を追加して合計を再計算（同じ商品は追加できない）
func (u *OrderUsecase) AddOrderItem(ctx context.Context, orderID int64, in OrderItemInput) (model.OrderItem, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if err := validator.Var("quantity", in.Quantity, "gte=1"); err != nil {
		return model.OrderItem{}, validationError(err)
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return model.OrderItem{}, invalid("unit_price", "gte=0")
	}

	var out model.OrderItem
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			return repoError(u.logger, "find order", err, zap.Int64("order_id", orderID))
		}

		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err != nil {
			return referenceError(u.logger, "find product", "product_id", err, zap.Int64("product_id", in.ProductID))
		}

		unit := p.Price
		if in.UnitPrice != nil {
			unit = *in.UnitPrice
		}
		item := model.OrderItem{
			OrderID:   orderID,
			ProductID: p.ID,
			Quantity:  in.Quantity,
			UnitPrice: unit,
		}
		item.Subtotal = item.ComputedSubtotal()
		if err := validator.Struct(item); err != nil {
			return validationError(err)
		}

		created, err := r.OrderItems().Create(ctx, item)
		if err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return &AppError{Code: CodeConflict, Field: "product_id", Message: "product already in order", Err: err}
			}
			return repoError(u.logger, "create order item", err, zap.Int64("order_id", orderID))
		}

		if err := u.recomputeTotal(ctx, r, orderID); err != nil {
			return err
		}

		created.Product = &p
		out = created
		return nil
	})
	if err != nil {
		return model.OrderItem{}, err
	}
	return out, nil
}

// 明細を削除して合計を再計算
func (u *OrderUsecase) RemoveOrderItem(ctx context.Context, itemID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.OrderItems().FindByID(ctx, itemID)
		if err != nil {
			return repoError(u.logger, "find order item", err, zap.Int64("order_item_id", itemID))
		}
		if err := r.OrderItems().Delete(ctx, itemID); err != nil {
			return repoError(u.logger, "delete order item", err, zap.Int64("order_item_id", itemID))
		}
		return u.recomputeTotal(ctx, r, item.OrderID)
	})
}

func (u *OrderUsecase) recomputeTotal(ctx context.Context, r repo.TxRepos, orderID int64) error {
	items, err := r.OrderItems().ListByOrderID(ctx, orderID)
	if err != nil {
		return repoError(u.logger, "list order items", err, zap.Int64("order_id", orderID))
	}

	total := model.Order{Items: items}.ItemsTotal()
	if err := r.Orders().UpdateTotal(ctx, orderID, total); err != nil {
		return repoError(u.logger, "update order total", err, zap.Int64("order_id", orderID))
	}
	return nil
}

// 遷移のルールはない
func (u *OrderUsecase) SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	if err := validator.Var("status", status, "order_status"); err != nil {
		return model.Order{}, validationError(err)
	}

	if err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return model.Order{}, repoError(u.logger, "update order status", err, zap.Int64("order_id", id))
	}
	u.logger.Info("order status changed", zap.Int64("order_id", id), zap.String("status", string(status)))
	return u.GetOrder(ctx, id)
}

// 明細・商品・支払い・顧客付き
func (u *OrderUsecase) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return model.Order{}, repoError(u.logger, "get order", err, zap.Int64("order_id", id))
	}
	return o, nil
}

func (u *OrderUsecase) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	list, err := u.orders.ListByCustomerID(ctx, customerID)
	if err != nil {
		return []model.Order{}, repoError(u.logger, "list orders", err, zap.Int64("customer_id", customerID))
	}
	return list, nil
}

// 明細と支払いも消える
func (u *OrderUsecase) DeleteOrder(ctx context.Context, id int64) error {
	if err := u.orders.Delete(ctx, id); err != nil {
		return repoError(u.logger, "delete order", err, zap.Int64("order_id", id))
	}
	return nil
}

// =====================
// Payment
// =====================

// 1注文につき1件
func (u *OrderUsecase) RecordPayment(ctx context.Context, orderID int64, in PaymentInput) (model.Payment, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return model.Payment{}, referenceError(u.logger, "find order", "order_id", err, zap.Int64("order_id", orderID))
	}

	p := model.Payment{
		OrderID:       orderID,
		Amount:        o.Total,
		Status:        in.Status,
		Method:        strings.TrimSpace(in.Method),
		TransactionID: in.TransactionID,
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if p.Status == "" {
		p.Status = model.PaymentStatusPending
	}
	if err := validator.Struct(p); err != nil {
		return model.Payment{}, validationError(err)
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Payment{}, &AppError{Code: CodeConflict, Field: "order_id", Message: "order already has a payment", Err: err}
		}
		return model.Payment{}, repoError(u.logger, "create payment", err, zap.Int64("order_id", orderID))
	}
	u.logger.Info("payment recorded", zap.Int64("order_id", orderID), zap.String("amount", created.Amount.StringFixed(2)))
	return created, nil
}

func (u *OrderUsecase) SetPaymentStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) (model.Payment, error) {
	if err := validator.Var("status", status, "payment_status"); err != nil {
		return model.Payment{}, validationError(err)
	}

	if err := u.payments.UpdateStatus(ctx, paymentID, status); err != nil {
		return model.Payment{}, repoError(u.logger, "update payment status", err, zap.Int64("payment_id", paymentID))
	}

	p, err := u.payments.FindByID(ctx, paymentID)
	if err != nil {
		return model.Payment{}, repoError(u.logger, "get payment", err, zap.Int64("payment_id", paymentID))
	}
	return p, nil
}

// 注文の支払い
func (u *OrderUsecase) GetPayment(ctx context.Context, orderID int64) (model.Payment, error) {
	p, err := u.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		return model.Payment{}, repoError(u.logger, "get payment", err, zap.Int64("order_id", orderID))
	}
	return p, nil
}
