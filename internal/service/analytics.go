package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

const topProductsLimit = 10

// GetOrderAnalytics aggregates every order created inside [from, to], both
// bounds optional. Breakdowns always carry the full status enumerations.
func (s *orderService) GetOrderAnalytics(ctx context.Context, from, to *time.Time) (entities.AnalyticsReport, error) {
	orders, err := s.orders.ListOrders(ctx, entities.OrderFilter{CreatedFrom: from, CreatedTo: to})
	if err != nil {
		return entities.AnalyticsReport{}, fmt.Errorf("failed to load orders for analytics: %w", err)
	}

	report := entities.AnalyticsReport{
		TotalOrders:            len(orders),
		StatusBreakdown:        make(map[entities.Status]int, len(entities.OrderStatuses())),
		PaymentStatusBreakdown: make(map[entities.PaymentStatus]int, len(entities.PaymentStatuses())),
	}
	for _, st := range entities.OrderStatuses() {
		report.StatusBreakdown[st] = 0
	}
	for _, st := range entities.PaymentStatuses() {
		report.PaymentStatusBreakdown[st] = 0
	}

	soldByProduct := make(map[string]int)
	var firstSeen []string

	for _, order := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(order.Total)
		report.StatusBreakdown[order.Status]++
		report.PaymentStatusBreakdown[order.PaymentStatus]++

		for _, item := range order.Items {
			if _, seen := soldByProduct[item.ProductName]; !seen {
				firstSeen = append(firstSeen, item.ProductName)
			}
			soldByProduct[item.ProductName] += item.Quantity
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue.
			Div(decimal.NewFromInt(int64(report.TotalOrders))).
			Round(2)
	}

	// stable sort keeps first-seen order on equal quantities
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return soldByProduct[firstSeen[i]] > soldByProduct[firstSeen[j]]
	})
	if len(firstSeen) > topProductsLimit {
		firstSeen = firstSeen[:topProductsLimit]
	}

	report.TopProducts = make([]entities.ProductSales, 0, len(firstSeen))
	for _, name := range firstSeen {
		report.TopProducts = append(report.TopProducts, entities.ProductSales{
			ProductName: name,
			Quantity:    soldByProduct[name],
		})
	}

	return report, nil
}
