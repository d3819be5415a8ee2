package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	FindByID(ctx context.Context, id int64) (model.Category, error)
	// 名前順
	List(ctx context.Context) ([]model.Category, error)
	// 商品はcategory_idがNULLになって残る
	Delete(ctx context.Context, id int64) error
	// カテゴリに属する商品数（activeOnlyなら公開中だけ）
	CountProducts(ctx context.Context, id int64, activeOnly bool) (int64, error)
}
