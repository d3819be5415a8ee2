package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 顧客ごとに1つ（2つ目はErrDuplicate）
func (r *CartGormRepository) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&cart).Error; err != nil {
		return model.Cart{}, translate(err)
	}
	return cart, nil
}

// 顧客のカートを明細・商品付きで取得
func (r *CartGormRepository) FindByCustomerID(ctx context.Context, customerID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product").
		Preload("Customer.User").
		Where("customer_id = ?", customerID).
		First(&cart).Error
	if err != nil {
		return model.Cart{}, translate(err)
	}
	return cart, nil
}

// 指定カートの明細を全削除
func (r *CartGormRepository) Clear(ctx context.Context, cartID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		if err := tx.Where("id = ?", cartID).First(&cart).Error; err != nil {
			return translate(err)
		}

		//cart_itemsを全削除
		if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
			return translate(err)
		}

		//カートの更新時刻を進める
		return translate(tx.Model(&cart).Update("updated_at", time.Now()).Error)
	})
}

type CartItemGormRepository struct {
	db *gorm.DB
}

func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return model.CartItem{}, translate(err)
	}
	return item, nil
}

// 明細を取得
func (r *CartItemGormRepository) FindByID(ctx context.Context, id int64) (model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		return model.CartItem{}, translate(err)
	}
	return item, nil
}

// カート明細を一覧取得
func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, translate(err)
	}
	return items, nil
}

// 明細の数量と小計を更新
func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, id int64, quantity int64, subtotal decimal.Decimal) error {
	return affected(r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"subtotal": subtotal,
		}))
}

// 明細を削除
func (r *CartItemGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.CartItem{}, id))
}
