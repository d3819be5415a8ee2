package model

import (
	"fmt"
	"time"
)

var ratingLabels = map[int]string{
	1: "Terrible",
	2: "Bad",
	3: "Average",
	4: "Good",
	5: "Excellent",
}

// 範囲外の評価に使うラベル
const RatingLabelUnrated = "Not rated"

// 商品レビュー。同じ顧客は同じ商品に1件まで。
type Review struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64     `gorm:"not null;uniqueIndex:idx_reviews_product_customer" json:"product_id"`
	Product    *Product  `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	CustomerID int64     `gorm:"not null;uniqueIndex:idx_reviews_product_customer;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Rating     int       `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating" validate:"min=1,max=5"`
	Comment    *string   `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func RatingLabel(rating int) string {
	if l, ok := ratingLabels[rating]; ok {
		return l
	}
	return RatingLabelUnrated
}

func (r Review) RatingLabel() string {
	return RatingLabel(r.Rating)
}

func (r Review) CustomerName() string {
	if r.Customer == nil {
		return ""
	}
	return r.Customer.FullName()
}

func (r Review) String() string {
	productName := ""
	if r.Product != nil {
		productName = r.Product.Name
	}
	return fmt.Sprintf("Review by %s for %s", r.CustomerName(), productName)
}
