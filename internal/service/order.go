package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"
	"github.com/varungor365/fashun-order-service/pkg/trm"
	"github.com/varungor365/fashun-order-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderNumber string, items []entities.OrderItem) error

	// UpdateOrder writes the order only while its status still equals from,
	// entities.ErrOrderConflict reports a concurrent writer winning the row.
	UpdateOrder(ctx context.Context, o entities.Order, from entities.Status) error
}

type ProductRepo interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)

	// Reservations are conditional decrements, false means the stock
	// check failed inside the store (no rows matched).
	ReserveVariant(ctx context.Context, productID, size, color string, qty int) (bool, error)
	ReserveFlat(ctx context.Context, productID string, qty int) (bool, error)

	ReleaseVariant(ctx context.Context, productID, size, color string, qty int) error
	ReleaseFlat(ctx context.Context, productID string, qty int) error
}

type Notifier interface {
	Notify(ctx context.Context, order entities.Order, event entities.NotificationEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type CreateOrderInput struct {
	CustomerID    string
	CustomerEmail string
	Items         []entities.OrderItem
	ShippingCost  decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
}

type UpdateStatusInput struct {
	Status         entities.Status
	PaymentStatus  entities.PaymentStatus
	TrackingNumber string
	Notes          string
}

const notifyTimeout = 10 * time.Second

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductRepo
	notifier  Notifier
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	notifier Notifier,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		products:  products,
		notifier:  notifier,
		cache:     cache,
	}
}

// CreateOrder reserves stock for the whole cart inside a single transaction,
// computes totals and persists the order. Either every item is reserved or
// none is, a failing item rolls back reservations made for earlier items.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	order := entities.Order{
		OrderNumber:   NewOrderNumber(),
		CustomerID:    in.CustomerID,
		CustomerEmail: in.CustomerEmail,
		Items:         in.Items,
		ShippingCost:  in.ShippingCost,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Status:        entities.StatusPending,
		PaymentStatus: entities.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}
	order.Subtotal, order.Total = CalculateOrderTotals(in.Items, in.ShippingCost, in.Tax, in.Discount)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, item := range in.Items {
			if err := s.reserveItem(ctx, item); err != nil {
				return err
			}
		}

		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.orders.SaveItems(ctx, order.OrderNumber, order.Items); err != nil {
			return fmt.Errorf("failed to save order items: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInsufficientStock):
			ordersRejected.WithLabelValues("insufficient_stock").Inc()
		case errors.Is(err, entities.ErrProductNotFound):
			ordersRejected.WithLabelValues("product_not_found").Inc()
		}
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_number", order.OrderNumber),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.Total.StringFixed(2)),
	)

	s.notifyAsync(order, entities.EventConfirmation)
	return order, nil
}

func (s *orderService) reserveItem(ctx context.Context, item entities.OrderItem) error {
	product, err := s.products.GetProduct(ctx, item.ProductID)
	if errors.Is(err, entities.ErrProductNotFound) {
		return &entities.ProductNotFoundError{ProductID: item.ProductID, ProductName: item.ProductName}
	}
	if err != nil {
		return fmt.Errorf("failed to load product %s: %w", item.ProductID, err)
	}

	if item.HasVariant() {
		variant, found := product.FindVariant(item.VariantSize, item.VariantColor)
		if !found || variant.Stock < item.Quantity {
			return s.insufficient(item, variant.Stock)
		}

		ok, err := s.products.ReserveVariant(ctx, item.ProductID, item.VariantSize, item.VariantColor, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to reserve variant stock: %w", err)
		}
		if !ok {
			// lost the race since the snapshot read
			return s.insufficient(item, variant.Stock)
		}
		return nil
	}

	if product.Inventory.AvailableStock < item.Quantity {
		return s.insufficient(item, product.Inventory.AvailableStock)
	}

	ok, err := s.products.ReserveFlat(ctx, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if !ok {
		return s.insufficient(item, product.Inventory.AvailableStock)
	}
	return nil
}

func (s *orderService) insufficient(item entities.OrderItem, available int) error {
	return &entities.InsufficientStockError{
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		VariantSize:  item.VariantSize,
		VariantColor: item.VariantColor,
		Requested:    item.Quantity,
		Available:    available,
	}
}

// UpdateOrderStatus applies status/payment changes with their side effects:
// shipped and delivered stamp their timestamps once, cancellation releases
// every reserved item, a paid payment status triggers a confirmation event.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderNumber string, in UpdateStatusInput) (entities.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	loadedStatus := order.Status

	var event entities.NotificationEvent
	releaseStock := false

	if in.Status != "" && in.Status != order.Status {
		if !entities.CanTransition(order.Status, in.Status) {
			return entities.Order{}, fmt.Errorf("%w: %s -> %s",
				entities.ErrInvalidStatusTransition, order.Status, in.Status)
		}
		order.Status = in.Status

		switch in.Status {
		case entities.StatusShipped:
			if order.ShippedAt == nil {
				now := time.Now().UTC()
				order.ShippedAt = &now
			}
			event = entities.EventShipped
		case entities.StatusDelivered:
			if order.DeliveredAt == nil {
				now := time.Now().UTC()
				order.DeliveredAt = &now
			}
			event = entities.EventDelivered
		case entities.StatusCancelled:
			releaseStock = true
			event = entities.EventCancelled
		}
	}

	if in.PaymentStatus != "" && in.PaymentStatus != order.PaymentStatus {
		order.PaymentStatus = in.PaymentStatus
		if in.PaymentStatus == entities.PaymentPaid {
			event = entities.EventPaymentConfirmed
		}
	}

	if in.TrackingNumber != "" {
		order.TrackingNumber = in.TrackingNumber
	}
	if in.Notes != "" {
		order.Notes = in.Notes
	}

	// Drop the cached copy before the write too, a read racing the commit
	// could otherwise repopulate it with the old order until TTL expiry.
	s.cache.Delete(order.OrderNumber)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// The guarded write goes first, a lost guard aborts the
		// transaction before any stock is released. Two cancellations
		// racing on one order release its items exactly once.
		if err := s.orders.UpdateOrder(ctx, order, loadedStatus); err != nil {
			return err
		}
		if releaseStock {
			return s.releaseReservedStock(ctx, order.Items)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(order.OrderNumber)

	if releaseStock {
		ordersCancelled.Inc()
	}

	if event != "" {
		s.notifyAsync(order, event)
	}
	return order, nil
}

// releaseReservedStock is the compensation for reserveItem. Missing products
// are skipped, the rest of the order must still be released.
func (s *orderService) releaseReservedStock(ctx context.Context, items []entities.OrderItem) error {
	for _, item := range items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			s.logger.Warn("skipping stock release for missing product",
				slog.String("product_id", item.ProductID))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load product %s: %w", item.ProductID, err)
		}

		if item.HasVariant() {
			if _, found := product.FindVariant(item.VariantSize, item.VariantColor); !found {
				continue
			}
			if err := s.products.ReleaseVariant(ctx, item.ProductID, item.VariantSize, item.VariantColor, item.Quantity); err != nil {
				return err
			}
			continue
		}

		if err := s.products.ReleaseFlat(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderNumber); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order",
				slog.String("order_number", orderNumber), slog.Any("error", err))
			return entities.Order{}, entities.ErrInvalidOrder
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByNumber(ctx, orderNumber)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	return s.orders.ListOrders(ctx, filter)
}

// WarmUpCache preloads the latest orders, called once at startup.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order",
			slog.String("order_number", order.OrderNumber), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderNumber, data)
}

// notifyAsync fires the notification in the background. Failures are logged
// and counted, they never propagate into the order operation.
func (s *orderService) notifyAsync(order entities.Order, event entities.NotificationEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, order, event); err != nil {
			notificationsFailed.Inc()
			s.logger.Error("failed to send order notification",
				slog.String("order_number", order.OrderNumber),
				slog.String("event", string(event)),
				slog.Any("error", err),
			)
			return
		}
		notificationsSent.WithLabelValues(string(event)).Inc()
	}()
}

// NewOrderNumber builds a collision-resistant order number. The unique index
// on orders.order_number turns the remaining probability into a hard error.
func NewOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("FUC-%d-%s", time.Now().UnixMilli(), suffix)
}
