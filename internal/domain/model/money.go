package model

import "github.com/shopspring/decimal"

// 金額表示の通貨記号
const currencyPrefix = "R$ "

// 小数2桁で "R$ 10.00" の形にする
func FormatMoney(d decimal.Decimal) string {
	return currencyPrefix + d.StringFixed(2)
}

// 明細の小計（数量 × 単価）
func lineSubtotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}
