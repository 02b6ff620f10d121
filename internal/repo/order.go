package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/varungor365/fashun-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_number", "customer_id", "customer_email",
	"subtotal", "shipping_cost", "tax", "discount", "total",
	"status", "payment_status", "tracking_number", "notes",
	"shipped_at", "delivered_at", "created_at",
}

var itemColumns = []string{
	"order_number", "product_id", "product_name",
	"variant_size", "variant_color", "quantity", "unit_price",
}

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderNumber, nullString(o.CustomerID), nullString(o.CustomerEmail),
			o.Subtotal, o.ShippingCost, o.Tax, o.Discount, o.Total,
			string(o.Status), string(o.PaymentStatus),
			nullString(o.TrackingNumber), nullString(o.Notes),
			nullTime(o.ShippedAt), nullTime(o.DeliveredAt), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *orderRepo) SaveItems(ctx context.Context, orderNumber string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(
			orderNumber, it.ProductID, it.ProductName,
			nullString(it.VariantSize), nullString(it.VariantColor),
			it.Quantity, it.UnitPrice,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

// UpdateOrder persists the mutable order fields. Items and totals are
// write-once at creation time and never touched here. The write is
// guarded by the status the caller loaded, the same conditional idiom
// the stock decrements use: zero rows affected means another writer
// moved the order first and the caller's side effects must not apply.
func (r *orderRepo) UpdateOrder(ctx context.Context, o entities.Order, from entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("payment_status", string(o.PaymentStatus)).
		Set("tracking_number", nullString(o.TrackingNumber)).
		Set("notes", nullString(o.Notes)).
		Set("shipped_at", nullTime(o.ShippedAt)).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Where(sq.Eq{"order_number": o.OrderNumber, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderConflict
	}
	return nil
}

func (r *orderRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_number": orderNumber}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *orderRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if filter.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.CustomerEmail != "" {
		q = q.Where(sq.Eq{"customer_email": filter.CustomerEmail})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.CreatedFrom != nil {
		q = q.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		q = q.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.attachItems(ctx, orders)
}

func (r *orderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.attachItems(ctx, orders)
}

func (r *orderRepo) attachItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	numbers := make([]string, len(orders))
	for i, o := range orders {
		numbers[i] = o.OrderNumber
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(numbers))
	for _, it := range items {
		itemsMap[it.OrderNumber] = append(itemsMap[it.OrderNumber], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderNumber]))
	}
	return result, nil
}
