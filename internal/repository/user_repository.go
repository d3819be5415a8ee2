package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// 認証側のユーザー行。顧客が参照する先。
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// 顧客も連鎖削除される
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	// ユーザーも読み込む
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	// 注文・レビュー・カートも連鎖削除
	Delete(ctx context.Context, id int64) error
}
