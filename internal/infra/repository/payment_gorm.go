package repository

import (
	"context"

	"backoffice/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&p).Error; err != nil {
		return model.Payment{}, translate(err)
	}
	return p, nil
}

func (r *PaymentGormRepository) FindByID(ctx context.Context, id int64) (model.Payment, error) {
	var p model.Payment
	if err := r.db.WithContext(ctx).Preload("Order.Customer.User").First(&p, id).Error; err != nil {
		return model.Payment{}, translate(err)
	}
	return p, nil
}

func (r *PaymentGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).
		Preload("Order.Customer.User").
		Where("order_id = ?", orderID).
		First(&p).Error
	if err != nil {
		return model.Payment{}, translate(err)
	}
	return p, nil
}

func (r *PaymentGormRepository) UpdateStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	return affected(r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", id).
		Update("status", status))
}
