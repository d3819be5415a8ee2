package repository

import (
	"context"

	"backoffice/internal/domain/model"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Omit("Products").Create(&c).Error; err != nil {
		return model.Category{}, translate(err)
	}
	return c, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) error {
	return affected(r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", c.ID).
		Update("name", c.Name))
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return model.Category{}, translate(err)
	}
	return c, nil
}

// 名前順
func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	if err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&list).Error; err != nil {
		return []model.Category{}, translate(err)
	}
	return list, nil
}

// 商品側はON DELETE SET NULLで残る
func (r *CategoryGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Category{}, id))
}

func (r *CategoryGormRepository) CountProducts(ctx context.Context, id int64, activeOnly bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("category_id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}
