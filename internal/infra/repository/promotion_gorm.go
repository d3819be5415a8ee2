package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromotionGormRepository struct {
	db *gorm.DB
}

func NewPromotionGormRepository(db *gorm.DB) *PromotionGormRepository {
	return &PromotionGormRepository{db: db}
}

// 対象商品はAttachProductsで紐付ける
func (r *PromotionGormRepository) Create(ctx context.Context, p model.Promotion) (model.Promotion, error) {
	p.StartsAt, p.EndsAt = p.StartsAt.UTC(), p.EndsAt.UTC()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&p).Error; err != nil {
		return model.Promotion{}, translate(err)
	}
	return p, nil
}

func (r *PromotionGormRepository) Update(ctx context.Context, p model.Promotion) error {
	return affected(r.db.WithContext(ctx).Model(&model.Promotion{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":             p.Name,
		"description":      p.Description,
		"discount_percent": p.DiscountPercent,
		"starts_at":        p.StartsAt.UTC(),
		"ends_at":          p.EndsAt.UTC(),
		"is_active":        p.IsActive,
	}))
}

func (r *PromotionGormRepository) FindByID(ctx context.Context, id int64) (model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		First(&p, id).Error
	if err != nil {
		return model.Promotion{}, translate(err)
	}
	return p, nil
}

func (r *PromotionGormRepository) List(ctx context.Context) ([]model.Promotion, error) {
	var list []model.Promotion
	err := r.db.WithContext(ctx).
		Order("ends_at desc").
		Order("starts_at asc").
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return []model.Promotion{}, translate(err)
	}
	return list, nil
}

// SQLiteは日時を文字列で比較するのでUTCに揃える
func (r *PromotionGormRepository) ListActiveAt(ctx context.Context, t time.Time) ([]model.Promotion, error) {
	t = t.UTC()
	var list []model.Promotion
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND starts_at <= ? AND ends_at >= ?", true, t, t).
		Order("ends_at desc").
		Order("starts_at asc").
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return []model.Promotion{}, translate(err)
	}
	return list, nil
}

// 商品を紐付ける（既に紐付いているものはそのまま）
func (r *PromotionGormRepository) AttachProducts(ctx context.Context, id int64, productIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		promo, products, err := loadPromotionAndProducts(tx, id, productIDs)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return translate(tx.Model(&promo).Association("Products").Append(&products))
	})
}

// 紐付けを外す（商品自体は消さない）
func (r *PromotionGormRepository) DetachProducts(ctx context.Context, id int64, productIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		promo, products, err := loadPromotionAndProducts(tx, id, productIDs)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return translate(tx.Model(&promo).Association("Products").Delete(&products))
	})
}

func (r *PromotionGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Promotion
		if err := tx.Select("id").First(&p, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&p).Association("Products").Clear(); err != nil {
			return translate(err)
		}
		return affected(tx.Delete(&model.Promotion{}, id))
	})
}

// 存在しない商品IDがあればErrReference
func loadPromotionAndProducts(tx *gorm.DB, id int64, productIDs []int64) (model.Promotion, []model.Product, error) {
	var promo model.Promotion
	if err := tx.Select("id").First(&promo, id).Error; err != nil {
		return model.Promotion{}, nil, translate(err)
	}

	ids := uniqueIDs(productIDs)
	if len(ids) == 0 {
		return promo, nil, nil
	}

	var products []model.Product
	if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return model.Promotion{}, nil, translate(err)
	}
	if len(products) != len(ids) {
		return model.Promotion{}, nil, repo.ErrReference
	}
	return promo, products, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
