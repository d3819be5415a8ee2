package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// 在庫の現在値を設定（無ければ行を作る）
func (r *StockGormRepository) Upsert(ctx context.Context, productID int64, quantity int64) (model.Stock, error) {
	s := model.Stock{
		ProductID:   productID,
		Quantity:    quantity,
		LastUpdated: time.Now(),
	}

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "last_updated"}),
		}).
		Create(&s).Error
	if err != nil {
		return model.Stock{}, translate(err)
	}

	//競合時はIDが埋まらないことがあるので読み直す
	return r.FindByProductID(ctx, productID)
}

func (r *StockGormRepository) FindByProductID(ctx context.Context, productID int64) (model.Stock, error) {
	var s model.Stock
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		First(&s).Error
	if err != nil {
		return model.Stock{}, translate(err)
	}
	return s, nil
}

// 補充が必要な在庫（少ない順）
func (r *StockGormRepository) ListBelow(ctx context.Context, threshold int64) ([]model.Stock, error) {
	var list []model.Stock
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("quantity < ?", threshold).
		Order("quantity asc").
		Order("product_id asc").
		Find(&list).Error
	if err != nil {
		return []model.Stock{}, translate(err)
	}
	return list, nil
}
