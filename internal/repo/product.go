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

type productRepo struct {
	base
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{base: newBase(db)}
}

func (r *productRepo) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select("id", "name").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	query, args = r.qb.Select("product_id", "size", "color", "stock").
		From("product_variants").
		Where(sq.Eq{"product_id": id}).
		OrderBy("size", "color").
		MustSql()

	var variants []Variant
	if err := r.selectContext(ctx, &variants, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product variants: %w", err)
	}

	query, args = r.qb.Select("product_id", "available_stock", "reserved_stock").
		From("product_inventory").
		Where(sq.Eq{"product_id": id}).
		MustSql()

	var inv Inventory
	err = r.getContext(ctx, &inv, query, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, fmt.Errorf("failed to get product inventory: %w", err)
	}

	return ProductToEntity(product, variants, inv), nil
}

// ReserveVariant decrements variant stock only when enough is available.
// The condition makes the check-and-decrement atomic, two concurrent carts
// cannot both take the last units.
func (r *productRepo) ReserveVariant(ctx context.Context, productID, size, color string, qty int) (bool, error) {
	query, args := r.qb.Update("product_variants").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"product_id": productID, "size": size, "color": color}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to reserve variant stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to reserve variant stock: %w", err)
	}
	return n == 1, nil
}

// ReserveFlat moves qty from available to reserved, guarded the same way.
func (r *productRepo) ReserveFlat(ctx context.Context, productID string, qty int) (bool, error) {
	query, args := r.qb.Update("product_inventory").
		Set("available_stock", sq.Expr("available_stock - ?", qty)).
		Set("reserved_stock", sq.Expr("reserved_stock + ?", qty)).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.GtOrEq{"available_stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to reserve stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to reserve stock: %w", err)
	}
	return n == 1, nil
}

func (r *productRepo) ReleaseVariant(ctx context.Context, productID, size, color string, qty int) error {
	query, args := r.qb.Update("product_variants").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"product_id": productID, "size": size, "color": color}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release variant stock: %w", err)
	}
	return nil
}

// ReleaseFlat returns qty to available stock, reserved is floored at zero.
func (r *productRepo) ReleaseFlat(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("product_inventory").
		Set("available_stock", sq.Expr("available_stock + ?", qty)).
		Set("reserved_stock", sq.Expr("GREATEST(reserved_stock - ?, 0)", qty)).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	return nil
}
