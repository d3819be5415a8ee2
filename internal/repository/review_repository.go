package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// 平均評価
type RatingStats struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	// 同じ(product, customer)はErrDuplicate
	Create(ctx context.Context, r model.Review) (model.Review, error)
	Update(ctx context.Context, r model.Review) error
	FindByID(ctx context.Context, id int64) (model.Review, error)
	// 新しい順（顧客とユーザー付き）
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, productID int64) (RatingStats, error)
}
