package db

import (
	"backoffice/internal/domain/model"

	"gorm.io/gorm"
)

// スキーマに含まれる全エンティティ
func Models() []any {
	return []any{
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Stock{},
		&model.Promotion{},
		&model.Customer{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Review{},
	}
}

// テーブル・外部キー・一意インデックスを作成する
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}
