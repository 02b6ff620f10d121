package handler

import (
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"
	"github.com/varungor365/fashun-order-service/internal/service"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is a cart submission. Guest checkout passes only
// customer_email.
type CreateOrderRequest struct {
	CustomerID    string            `json:"customer_id,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty" validate:"required_without=CustomerID,omitempty,email"`
	Items         []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
	ShippingCost  decimal.Decimal   `json:"shipping_cost"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
}

type CreateOrderItem struct {
	ProductID    string          `json:"product_id" validate:"required"`
	ProductName  string          `json:"product_name" validate:"required"`
	VariantSize  string          `json:"variant_size,omitempty" validate:"required_with=VariantColor"`
	VariantColor string          `json:"variant_color,omitempty" validate:"required_with=VariantSize"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

type UpdateStatusRequest struct {
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled refunded"`
	PaymentStatus  string `json:"payment_status,omitempty" validate:"omitempty,oneof=pending paid failed refunded partially_refunded"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Order is the JSON view of an order, monetary values are fixed to 2 decimals
type Order struct {
	OrderNumber    string      `json:"order_number"`
	CustomerID     string      `json:"customer_id,omitempty"`
	CustomerEmail  string      `json:"customer_email,omitempty"`
	Items          []OrderItem `json:"items"`
	Subtotal       string      `json:"subtotal"`
	ShippingCost   string      `json:"shipping_cost"`
	Tax            string      `json:"tax"`
	Discount       string      `json:"discount"`
	Total          string      `json:"total"`
	Status         string      `json:"status"`
	PaymentStatus  string      `json:"payment_status"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	ShippedAt      *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time  `json:"delivered_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	VariantSize  string `json:"variant_size,omitempty"`
	VariantColor string `json:"variant_color,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
}

type ProductSales struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type AnalyticsReport struct {
	TotalOrders            int            `json:"total_orders"`
	TotalRevenue           string         `json:"total_revenue"`
	AverageOrderValue      string         `json:"average_order_value"`
	StatusBreakdown        map[string]int `json:"status_breakdown"`
	PaymentStatusBreakdown map[string]int `json:"payment_status_breakdown"`
	TopProducts            []ProductSales `json:"top_products"`
}

func CreateOrderRequestToInput(req CreateOrderRequest) service.CreateOrderInput {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			VariantSize:  it.VariantSize,
			VariantColor: it.VariantColor,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}

	return service.CreateOrderInput{
		CustomerID:    req.CustomerID,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		ShippingCost:  req.ShippingCost,
		Tax:           req.Tax,
		Discount:      req.Discount,
	}
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID:    i.ProductID,
		ProductName:  i.ProductName,
		VariantSize:  i.VariantSize,
		VariantColor: i.VariantColor,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice.StringFixed(2),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		CustomerEmail:  o.CustomerEmail,
		Items:          items,
		Subtotal:       o.Subtotal.StringFixed(2),
		ShippingCost:   o.ShippingCost.StringFixed(2),
		Tax:            o.Tax.StringFixed(2),
		Discount:       o.Discount.StringFixed(2),
		Total:          o.Total.StringFixed(2),
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		TrackingNumber: o.TrackingNumber,
		Notes:          o.Notes,
		ShippedAt:      o.ShippedAt,
		DeliveredAt:    o.DeliveredAt,
		CreatedAt:      o.CreatedAt,
	}
}

func ReportEntityToJSON(r entities.AnalyticsReport) AnalyticsReport {
	statuses := make(map[string]int, len(r.StatusBreakdown))
	for st, n := range r.StatusBreakdown {
		statuses[string(st)] = n
	}
	payments := make(map[string]int, len(r.PaymentStatusBreakdown))
	for st, n := range r.PaymentStatusBreakdown {
		payments[string(st)] = n
	}

	top := make([]ProductSales, 0, len(r.TopProducts))
	for _, p := range r.TopProducts {
		top = append(top, ProductSales{ProductName: p.ProductName, Quantity: p.Quantity})
	}

	avg := "0.00"
	if r.TotalOrders > 0 {
		avg = r.AverageOrderValue.StringFixed(2)
	}

	return AnalyticsReport{
		TotalOrders:            r.TotalOrders,
		TotalRevenue:           r.TotalRevenue.StringFixed(2),
		AverageOrderValue:      avg,
		StatusBreakdown:        statuses,
		PaymentStatusBreakdown: payments,
		TopProducts:            top,
	}
}
