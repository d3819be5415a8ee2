package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/model"
)

type PromotionRepository interface {
	Create(ctx context.Context, p model.Promotion) (model.Promotion, error)
	Update(ctx context.Context, p model.Promotion) error
	// 対象商品も読み込む
	FindByID(ctx context.Context, id int64) (model.Promotion, error)
	// 終了日の新しい順、同じなら開始日の古い順
	List(ctx context.Context) ([]model.Promotion, error)
	// activeかつ start <= t <= end
	ListActiveAt(ctx context.Context, t time.Time) ([]model.Promotion, error)
	// 存在しない商品IDが含まれていたらErrReference
	AttachProducts(ctx context.Context, id int64, productIDs []int64) error
	DetachProducts(ctx context.Context, id int64, productIDs []int64) error
	Delete(ctx context.Context, id int64) error
}
