package model

import "time"

// この数を下回ったら補充が必要
const RestockThreshold = 5

// 商品ごとの在庫情報（1商品1行）
type Stock struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64     `gorm:"not null;uniqueIndex" json:"product_id"`
	Product     *Product  `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity    int64     `gorm:"not null;check:quantity >= 0" json:"quantity" validate:"gte=0"`
	LastUpdated time.Time `gorm:"not null;autoUpdateTime" json:"last_updated"`
}

func (s Stock) Available() bool {
	return s.Quantity > 0
}

func (s Stock) NeedsRestock() bool {
	return s.Quantity < RestockThreshold
}

func (s Stock) String() string {
	if s.Product == nil {
		return "Stock"
	}
	return "Stock of " + s.Product.Name
}
