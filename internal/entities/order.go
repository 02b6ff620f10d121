package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ProductID    string
	ProductName  string
	VariantSize  string
	VariantColor string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// HasVariant reports whether the item targets a specific size/color SKU.
// Both fields must be set, a lone size or color is treated as a flat-stock item.
func (i OrderItem) HasVariant() bool {
	return i.VariantSize != "" && i.VariantColor != ""
}

type Order struct {
	OrderNumber   string
	CustomerID    string
	CustomerEmail string

	Items []OrderItem

	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal

	Status        Status
	PaymentStatus PaymentStatus

	TrackingNumber string
	Notes          string

	// Stamped once, on the first transition to shipped/delivered.
	ShippedAt   *time.Time
	DeliveredAt *time.Time

	CreatedAt time.Time
}

type OrderFilter struct {
	CustomerID    string
	CustomerEmail string
	Status        Status
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
