package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// 一覧の絞り込み
type ProductFilter struct {
	CategoryID *int64
	ActiveOnly bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	// カテゴリと在庫情報も読み込む
	FindByID(ctx context.Context, id int64) (model.Product, error)
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	// 明細・レビュー・在庫は連鎖削除、プロモーションとの紐付けは外す
	Delete(ctx context.Context, id int64) error
}

// 商品ごとの在庫行
type StockRepository interface {
	// 無ければ作成、あれば数量を上書き
	Upsert(ctx context.Context, productID int64, quantity int64) (model.Stock, error)
	FindByProductID(ctx context.Context, productID int64) (model.Stock, error)
	// quantity < threshold の在庫（商品付き、少ない順）
	ListBelow(ctx context.Context, threshold int64) ([]model.Stock, error)
}
