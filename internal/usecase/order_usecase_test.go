package usecase_test

import (
	"context"
	"testing"

	"backoffice/internal/domain/model"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, a *app, customerID int64) model.Order {
	t.Helper()

	o, err := a.orders.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerID:         customerID,
		DeliveryAddress:    "Rua das Flores, 10",
		DeliveryPostalCode: "50000-000",
	})
	require.NoError(t, err)
	return o
}

func TestOrderUsecase_CreateOrder_Defaults(t *testing.T) {
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")

	o := newOrder(t, a, c.ID)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.True(t, o.Total.IsZero())

	got, err := a.orders.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Order #"+itoa(o.ID)+" - Ana Souza", got.String())
	assert.Equal(t, "Pending", got.Status.Label())
}

func TestOrderUsecase_CreateOrder_Errors(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")

	_, err := a.orders.CreateOrder(ctx, usecase.CreateOrderInput{CustomerID: 999, DeliveryAddress: "x", DeliveryPostalCode: "1"})
	assertAppError(t, err, usecase.CodeReference, "customer_id")

	_, err = a.orders.CreateOrder(ctx, usecase.CreateOrderInput{CustomerID: c.ID, DeliveryAddress: "x", DeliveryPostalCode: "1", Status: "lost"})
	assertAppError(t, err, usecase.CodeValidation, "status")

	_, err = a.orders.CreateOrder(ctx, usecase.CreateOrderInput{CustomerID: c.ID, DeliveryPostalCode: "1"})
	assertAppError(t, err, usecase.CodeValidation, "delivery_address")
}

func TestOrderUsecase_AddItem_ComputesSubtotalAndTotal(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "10.00")
	tea := a.createProduct(t, "Tea", "7.50")
	o := newOrder(t, a, c.ID)

	item, err := a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "20.00", item.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", item.UnitPrice.StringFixed(2))

	// 単価の指定と数量0（=1）
	custom := dec("6.00")
	item, err = a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: tea.ID, UnitPrice: &custom})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Quantity)
	assert.Equal(t, "6.00", item.Subtotal.StringFixed(2))
	assert.Equal(t, "1 x Tea in Order #"+itoa(o.ID), item.String())

	got, err := a.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ItemCount())
	assert.Equal(t, "R$ 26.00", got.FormattedTotal())
	assert.True(t, got.Total.Equal(got.ItemsTotal()))
}

func TestOrderUsecase_AddItem_Rejects(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "10.00")
	o := newOrder(t, a, c.ID)

	_, err := a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, Quantity: -1})
	assertAppError(t, err, usecase.CodeValidation, "quantity")

	neg := dec("-1.00")
	_, err = a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, UnitPrice: &neg})
	assertAppError(t, err, usecase.CodeValidation, "unit_price")

	_, err = a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: 999})
	assertAppError(t, err, usecase.CodeReference, "product_id")

	_, err = a.orders.AddOrderItem(ctx, 999, usecase.OrderItemInput{ProductID: coffee.ID})
	assertAppError(t, err, usecase.CodeNotFound, "")

	_, err = a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, Quantity: 1})
	require.NoError(t, err)

	// 同じ商品は2行目を作れない。合計も変わらない。
	_, err = a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, Quantity: 3})
	assertAppError(t, err, usecase.CodeConflict, "product_id")

	got, err := a.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ItemCount())
	assert.Equal(t, "10.00", got.Total.StringFixed(2))
}

func TestOrderUsecase_RemoveItem_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "10.00")
	tea := a.createProduct(t, "Tea", "5.00")
	o := newOrder(t, a, c.ID)

	first, err := a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: tea.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, a.orders.RemoveOrderItem(ctx, first.ID))

	got, err := a.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "5.00", got.Total.StringFixed(2))

	assertAppError(t, a.orders.RemoveOrderItem(ctx, first.ID), usecase.CodeNotFound, "")
}

func TestOrderUsecase_SetStatus_AnyToAny(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	o := newOrder(t, a, c.ID)

	got, err := a.orders.SetOrderStatus(ctx, o.ID, model.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, got.Status)

	// 戻すのも可
	got, err = a.orders.SetOrderStatus(ctx, o.ID, model.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.Status)

	_, err = a.orders.SetOrderStatus(ctx, o.ID, "returned")
	assertAppError(t, err, usecase.CodeValidation, "status")

	_, err = a.orders.SetOrderStatus(ctx, 999, model.OrderStatusShipped)
	assertAppError(t, err, usecase.CodeNotFound, "")
}

func TestOrderUsecase_ListByCustomer_NewestFirst(t *testing.T) {
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	first := newOrder(t, a, c.ID)
	second := newOrder(t, a, c.ID)

	list, err := a.orders.ListOrdersByCustomer(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestOrderUsecase_Payment(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "12.50")
	o := newOrder(t, a, c.ID)

	_, err := a.orders.AddOrderItem(ctx, o.ID, usecase.OrderItemInput{ProductID: coffee.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = a.orders.RecordPayment(ctx, o.ID, usecase.PaymentInput{})
	assertAppError(t, err, usecase.CodeValidation, "method")

	negative := dec("-0.01")
	_, err = a.orders.RecordPayment(ctx, o.ID, usecase.PaymentInput{Method: "pix", Amount: &negative})
	assertAppError(t, err, usecase.CodeValidation, "amount")

	p, err := a.orders.RecordPayment(ctx, o.ID, usecase.PaymentInput{Method: "pix", TransactionID: ptr("tx-1")})
	require.NoError(t, err)
	assert.Equal(t, "R$ 25.00", p.FormattedAmount())
	assert.Equal(t, model.PaymentStatusPending, p.Status)

	_, err = a.orders.RecordPayment(ctx, o.ID, usecase.PaymentInput{Method: "card"})
	assertAppError(t, err, usecase.CodeConflict, "order_id")

	_, err = a.orders.RecordPayment(ctx, 999, usecase.PaymentInput{Method: "pix"})
	assertAppError(t, err, usecase.CodeReference, "order_id")

	_, err = a.orders.SetPaymentStatus(ctx, p.ID, "refunded")
	assertAppError(t, err, usecase.CodeValidation, "status")

	paid, err := a.orders.SetPaymentStatus(ctx, p.ID, model.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, "Payment for Order #"+itoa(o.ID)+" - Status: Paid", paid.String())
	assert.Equal(t, "Ana Souza", paid.CustomerName())

	got, err := a.orders.GetPayment(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	// 注文を消すと支払いも消える
	require.NoError(t, a.orders.DeleteOrder(ctx, o.ID))
	_, err = a.orders.GetPayment(ctx, o.ID)
	assertAppError(t, err, usecase.CodeNotFound, "")
}
