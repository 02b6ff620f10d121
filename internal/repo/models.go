package repo

import (
	"database/sql"
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderNumber    string          `db:"order_number"`
	CustomerID     sql.NullString  `db:"customer_id"`
	CustomerEmail  sql.NullString  `db:"customer_email"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	ShippingCost   decimal.Decimal `db:"shipping_cost"`
	Tax            decimal.Decimal `db:"tax"`
	Discount       decimal.Decimal `db:"discount"`
	Total          decimal.Decimal `db:"total"`
	Status         string          `db:"status"`
	PaymentStatus  string          `db:"payment_status"`
	TrackingNumber sql.NullString  `db:"tracking_number"`
	Notes          sql.NullString  `db:"notes"`
	ShippedAt      sql.NullTime    `db:"shipped_at"`
	DeliveredAt    sql.NullTime    `db:"delivered_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderNumber  string          `db:"order_number"`
	ProductID    string          `db:"product_id"`
	ProductName  string          `db:"product_name"`
	VariantSize  sql.NullString  `db:"variant_size"`
	VariantColor sql.NullString  `db:"variant_color"`
	Quantity     int             `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
}

type Product struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Variant struct {
	ProductID string `db:"product_id"`
	Size      string `db:"size"`
	Color     string `db:"color"`
	Stock     int    `db:"stock"`
}

type Inventory struct {
	ProductID      string `db:"product_id"`
	AvailableStock int    `db:"available_stock"`
	ReservedStock  int    `db:"reserved_stock"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID:    i.ProductID,
		ProductName:  i.ProductName,
		VariantSize:  nullStringToString(i.VariantSize),
		VariantColor: nullStringToString(i.VariantColor),
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderNumber:    o.OrderNumber,
		CustomerID:     nullStringToString(o.CustomerID),
		CustomerEmail:  nullStringToString(o.CustomerEmail),
		Subtotal:       o.Subtotal,
		ShippingCost:   o.ShippingCost,
		Tax:            o.Tax,
		Discount:       o.Discount,
		Total:          o.Total,
		Status:         entities.Status(o.Status),
		PaymentStatus:  entities.PaymentStatus(o.PaymentStatus),
		TrackingNumber: nullStringToString(o.TrackingNumber),
		Notes:          nullStringToString(o.Notes),
		CreatedAt:      o.CreatedAt,
	}

	if o.ShippedAt.Valid {
		t := o.ShippedAt.Time
		order.ShippedAt = &t
	}
	if o.DeliveredAt.Valid {
		t := o.DeliveredAt.Time
		order.DeliveredAt = &t
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ProductToEntity(p Product, variants []Variant, inv Inventory) entities.Product {
	product := entities.Product{
		ID:   p.ID,
		Name: p.Name,
		Inventory: entities.Inventory{
			AvailableStock: inv.AvailableStock,
			ReservedStock:  inv.ReservedStock,
		},
	}

	if len(variants) > 0 {
		product.Variants = make([]entities.Variant, 0, len(variants))
		for _, v := range variants {
			product.Variants = append(product.Variants, entities.Variant{
				Size:  v.Size,
				Color: v.Color,
				Stock: v.Stock,
			})
		}
	}

	return product
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
