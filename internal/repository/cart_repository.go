package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, cart model.Cart) (model.Cart, error)
	// 明細と商品、顧客とユーザーも読み込む
	FindByCustomerID(ctx context.Context, customerID int64) (model.Cart, error)
	// 明細を全削除
	Clear(ctx context.Context, cartID int64) error
}
