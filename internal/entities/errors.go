package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrOrderConflict           = errors.New("order was modified concurrently")
	ErrInvalidOrder            = errors.New("invalid order data")
)

// ProductNotFoundError carries the offending cart reference,
// errors.Is matches it against ErrProductNotFound.
type ProductNotFoundError struct {
	ProductID   string
	ProductName string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s (%s)", e.ProductName, e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// InsufficientStockError reports requested vs available quantity for a SKU,
// errors.Is matches it against ErrInsufficientStock.
type InsufficientStockError struct {
	ProductID    string
	ProductName  string
	VariantSize  string
	VariantColor string
	Requested    int
	Available    int
}

func (e *InsufficientStockError) Error() string {
	if e.VariantSize != "" || e.VariantColor != "" {
		return fmt.Sprintf("insufficient stock for %s (%s, %s): requested %d, available %d",
			e.ProductName, e.VariantSize, e.VariantColor, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
