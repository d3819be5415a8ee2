package usecase_test

import (
	"context"
	"testing"

	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartUsecase_TotalOfItems(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "10.00")
	bread := a.createProduct(t, "Bread", "5.00")

	_, err := a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: coffee.ID, Quantity: 2})
	require.NoError(t, err)
	summary, err := a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: bread.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, "25.00", summary.Total.StringFixed(2))
	assert.Equal(t, "R$ 25.00", summary.FormattedTotal)
	require.Len(t, summary.Cart.Items, 2)
	assert.Equal(t, "Coffee", summary.Cart.Items[0].ProductName())
	assert.Equal(t, "R$ 20.00", summary.Cart.Items[0].FormattedSubtotal())
}

func TestCartUsecase_AddItem_Rejects(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "10.00")

	_, err := a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: coffee.ID, Quantity: -2})
	assertAppError(t, err, usecase.CodeValidation, "quantity")

	_, err = a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: 999})
	assertAppError(t, err, usecase.CodeReference, "product_id")

	_, err = a.carts.AddCartItem(ctx, 999, usecase.AddCartItemInput{ProductID: coffee.ID})
	assertAppError(t, err, usecase.CodeNotFound, "")

	_, err = a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: coffee.ID})
	require.NoError(t, err)
	_, err = a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: coffee.ID})
	assertAppError(t, err, usecase.CodeConflict, "product_id")
}

func TestCartUsecase_UpdateRemoveClear(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	c := a.registerCustomer(t, "ana@example.com")
	coffee := a.createProduct(t, "Coffee", "10.00")
	bread := a.createProduct(t, "Bread", "5.00")

	_, err := a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: coffee.ID})
	require.NoError(t, err)
	summary, err := a.carts.AddCartItem(ctx, c.ID, usecase.AddCartItemInput{ProductID: bread.ID})
	require.NoError(t, err)
	coffeeLine := summary.Cart.Items[0]

	// 価格が変わっても追加時の単価で計算
	_, err = a.catalog.UpdateProduct(ctx, coffee.ID, usecase.ProductInput{Name: "Coffee", Price: dec("99.00")})
	require.NoError(t, err)

	item, err := a.carts.UpdateCartItemQuantity(ctx, coffeeLine.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "30.00", item.Subtotal.StringFixed(2))

	_, err = a.carts.UpdateCartItemQuantity(ctx, coffeeLine.ID, 0)
	assertAppError(t, err, usecase.CodeValidation, "quantity")
	_, err = a.carts.UpdateCartItemQuantity(ctx, 999, 1)
	assertAppError(t, err, usecase.CodeNotFound, "")

	summary, err = a.carts.GetCart(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "35.00", summary.Total.StringFixed(2))

	require.NoError(t, a.carts.RemoveCartItem(ctx, coffeeLine.ID))
	assertAppError(t, a.carts.RemoveCartItem(ctx, coffeeLine.ID), usecase.CodeNotFound, "")

	summary, err = a.carts.GetCart(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ItemCount)

	summary, err = a.carts.ClearCart(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.ItemCount)
	assert.True(t, summary.Total.IsZero())
	assert.Equal(t, c.ID, summary.Cart.CustomerID)
}
