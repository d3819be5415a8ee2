package repository

import (
	"context"

	"backoffice/internal/domain/model"
	"github.com/shopspring/decimal"
)

type CartItemRepository interface {
	// 同じ(cart, product)はErrDuplicate
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	FindByID(ctx context.Context, id int64) (model.CartItem, error)
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64, subtotal decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
