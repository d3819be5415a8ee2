package model

// 商品カテゴリ
// 削除されても商品は残り、category_idがNULLになる。
type Category struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"products,omitempty"`
}

// 読み込み済みの商品数
func (c Category) TotalProducts() int {
	return len(c.Products)
}

// 読み込み済みのうち公開中の商品数
func (c Category) ActiveProducts() int {
	n := 0
	for _, p := range c.Products {
		if p.IsActive {
			n++
		}
	}
	return n
}

func (c Category) String() string {
	return c.Name
}
