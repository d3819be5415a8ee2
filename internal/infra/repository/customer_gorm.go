package repository

import (
	"context"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type customerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) repo.CustomerRepository {
	return &customerGormRepository{db: db}
}

func (r *customerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&c).Error; err != nil {
		return model.Customer{}, translate(err)
	}
	return c, nil
}

// 顧客情報を更新（user_idは変えない）
func (r *customerGormRepository) Update(ctx context.Context, c model.Customer) error {
	return affected(r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"address":     c.Address,
			"city":        c.City,
			"state":       c.State,
			"postal_code": c.PostalCode,
			"phone":       c.Phone,
			"birth_date":  c.BirthDate,
		}))
}

func (r *customerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).Preload("User").First(&c, id).Error; err != nil {
		return model.Customer{}, translate(err)
	}
	return c, nil
}

func (r *customerGormRepository) List(ctx context.Context) ([]model.Customer, error) {
	var list []model.Customer
	if err := r.db.WithContext(ctx).Preload("User").Order("id asc").Find(&list).Error; err != nil {
		return []model.Customer{}, translate(err)
	}
	return list, nil
}

// 注文・レビュー・カートはFKで連鎖削除
func (r *customerGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Customer{}, id))
}
