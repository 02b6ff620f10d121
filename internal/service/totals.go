package service

import (
	"github.com/varungor365/fashun-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

// CalculateOrderTotals is pure: subtotal is the sum of unit price times
// quantity, total adds shipping and tax and subtracts the discount. Both are
// rounded to 2 decimals, half away from zero.
func CalculateOrderTotals(items []entities.OrderItem, shipping, tax, discount decimal.Decimal) (subtotal, total decimal.Decimal) {
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	total = subtotal.Add(shipping).Add(tax).Sub(discount)
	return subtotal.Round(2), total.Round(2)
}
