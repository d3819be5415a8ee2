package repository

import (
	"context"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rv).Error; err != nil {
		return model.Review{}, translate(err)
	}
	return rv, nil
}

// 評価とコメントだけ更新できる
func (r *ReviewGormRepository) Update(ctx context.Context, rv model.Review) error {
	return affected(r.db.WithContext(ctx).Model(&model.Review{}).Where("id = ?", rv.ID).Updates(map[string]interface{}{
		"rating":  rv.Rating,
		"comment": rv.Comment,
	}))
}

func (r *ReviewGormRepository) FindByID(ctx context.Context, id int64) (model.Review, error) {
	var rv model.Review
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Customer.User").
		First(&rv, id).Error
	if err != nil {
		return model.Review{}, translate(err)
	}
	return rv, nil
}

// 新しい順
func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	var list []model.Review
	err := r.db.WithContext(ctx).
		Preload("Customer.User").
		Where("product_id = ?", productID).
		Order("created_at desc").
		Order("id desc").
		Find(&list).Error
	if err != nil {
		return []model.Review{}, translate(err)
	}
	return list, nil
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Review{}, id))
}

// 平均評価と件数（レビューが無ければ0件・0.0）
func (r *ReviewGormRepository) Stats(ctx context.Context, productID int64) (repo.RatingStats, error) {
	var row struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return repo.RatingStats{}, translate(err)
	}
	return repo.RatingStats{Average: row.AvgRating, Count: row.ReviewCount}, nil
}
