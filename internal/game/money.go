package game

import (
	"github.com/shopspring/decimal"
)

// FormatMoney сумма в целых единицах с двумя знаками: 30 -> "30.00"
func FormatMoney(amount int) string {
	return decimal.NewFromInt(int64(amount)).StringFixed(2)
}
