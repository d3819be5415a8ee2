package repository

import (
	"context"

	"backoffice/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&order).Error; err != nil {
		return model.Order{}, translate(err)
	}
	return order, nil
}

// 明細・商品・支払い・顧客付き
func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product").
		Preload("Payment").
		Preload("Customer.User").
		First(&o, id).Error
	if err != nil {
		return model.Order{}, translate(err)
	}
	return o, nil
}

// 新しい順
func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, translate(err)
	}
	return items, nil
}

// 遷移のルールはない（どのステータスにも変えられる）
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return affected(r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status))
}

func (r *OrderGormRepository) UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error {
	return affected(r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("total", total))
}

// 明細・支払いはFKで連鎖削除
func (r *OrderGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Order{}, id))
}

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return model.OrderItem{}, translate(err)
	}
	return item, nil
}

func (r *OrderItemGormRepository) FindByID(ctx context.Context, id int64) (model.OrderItem, error) {
	var item model.OrderItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		return model.OrderItem{}, translate(err)
	}
	return item, nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, translate(err)
	}
	return items, nil
}

func (r *OrderItemGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.OrderItem{}, id))
}
