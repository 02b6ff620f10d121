package entities

import "github.com/shopspring/decimal"

type ProductSales struct {
	ProductName string
	Quantity    int
}

type AnalyticsReport struct {
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal

	StatusBreakdown        map[Status]int
	PaymentStatusBreakdown map[PaymentStatus]int

	// Top 10 products by quantity sold, descending, ties keep first-seen order.
	TopProducts []ProductSales
}
