package validator

import (
	"errors"
	"testing"
	"time"

	"backoffice/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() model.Product {
	return model.Product{
		Name:  "Coffee",
		Price: decimal.RequireFromString("0.01"),
		Stock: 0,
	}
}

func requireFieldError(t *testing.T, err error, field, constraint string) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, field, fe.Field)
	assert.Equal(t, constraint, fe.Constraint)
}

func TestProduct_Valid(t *testing.T) {
	assert.NoError(t, Struct(validProduct()))
}

func TestProduct_PriceMustBePositive(t *testing.T) {
	for _, price := range []string{"0", "0.00", "-1", "0.009"} {
		p := validProduct()
		p.Price = decimal.RequireFromString(price)
		requireFieldError(t, Struct(p), "price", "gte=0.01")
	}
}

func TestProduct_StockMustNotBeNegative(t *testing.T) {
	p := validProduct()
	p.Stock = -1
	requireFieldError(t, Struct(p), "stock", "gte=0")
}

func TestProduct_NameRequired(t *testing.T) {
	p := validProduct()
	p.Name = ""
	requireFieldError(t, Struct(p), "name", "required")
}

func TestReview_Rating(t *testing.T) {
	for _, r := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, Struct(model.Review{Rating: r}))
	}
	requireFieldError(t, Struct(model.Review{Rating: 0}), "rating", "min=1")
	requireFieldError(t, Struct(model.Review{Rating: 6}), "rating", "max=5")
}

func validCustomer() model.Customer {
	return model.Customer{
		Address:    "Rua A, 10",
		City:       "Campinas",
		State:      model.StateSP,
		PostalCode: "13000-000",
	}
}

func TestCustomer_State(t *testing.T) {
	for _, s := range model.StateCodes() {
		c := validCustomer()
		c.State = s
		assert.NoError(t, Struct(c), s)
	}

	c := validCustomer()
	c.State = "ZZ"
	requireFieldError(t, Struct(c), "state", "br_state")

	c.State = ""
	requireFieldError(t, Struct(c), "state", "br_state")
}

func TestCustomer_PhoneLength(t *testing.T) {
	c := validCustomer()
	long := "012345678901234567890"
	c.Phone = &long
	requireFieldError(t, Struct(c), "phone", "max=20")
}

func TestPromotion_Discount(t *testing.T) {
	p := model.Promotion{Name: "Sale", StartsAt: time.Now(), EndsAt: time.Now()}

	for _, d := range []string{"0", "50.5", "100"} {
		p.DiscountPercent = decimal.RequireFromString(d)
		assert.NoError(t, Struct(p), d)
	}

	p.DiscountPercent = decimal.RequireFromString("-0.01")
	requireFieldError(t, Struct(p), "discount_percent", "gte=0")

	p.DiscountPercent = decimal.RequireFromString("100.01")
	requireFieldError(t, Struct(p), "discount_percent", "lte=100")
}

func TestStock_Quantity(t *testing.T) {
	assert.NoError(t, Struct(model.Stock{Quantity: 0}))
	requireFieldError(t, Struct(model.Stock{Quantity: -1}), "quantity", "gte=0")
}

func TestStatuses(t *testing.T) {
	o := model.Order{Status: model.OrderStatusShipped, DeliveryAddress: "Rua A", DeliveryPostalCode: "13000-000"}
	assert.NoError(t, Struct(o))

	o.Status = "lost"
	requireFieldError(t, Struct(o), "status", "order_status")

	p := model.Payment{Status: model.PaymentStatusPaid, Method: "pix"}
	assert.NoError(t, Struct(p))

	p.Status = "refunded"
	requireFieldError(t, Struct(p), "status", "payment_status")
}

func TestLineItem_Quantity(t *testing.T) {
	item := model.CartItem{Quantity: 1, UnitPrice: decimal.RequireFromString("5")}
	assert.NoError(t, Struct(item))

	item.Quantity = 0
	requireFieldError(t, Struct(item), "quantity", "gte=1")
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("password", "long-enough", "min=8"))
	requireFieldError(t, Var("password", "short", "min=8"), "password", "min=8")
}

func TestMoney_NotNegative(t *testing.T) {
	o := model.Order{Status: model.OrderStatusPending, DeliveryAddress: "Rua A", DeliveryPostalCode: "13000-000"}
	assert.NoError(t, Struct(o))

	o.Total = decimal.RequireFromString("-0.01")
	requireFieldError(t, Struct(o), "total", "gte=0")

	p := model.Payment{Status: model.PaymentStatusPending, Method: "pix"}
	assert.NoError(t, Struct(p))

	p.Amount = decimal.RequireFromString("-1")
	requireFieldError(t, Struct(p), "amount", "gte=0")
}
