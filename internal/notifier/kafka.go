package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/varungor365/fashun-order-service/internal/config"
	"github.com/varungor365/fashun-order-service/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Envelope is the wire format of a notification event. The email service
// consumes the topic and renders the customer-facing message.
type Envelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Order      Order     `json:"order"`
}

type Order struct {
	OrderNumber    string      `json:"order_number"`
	CustomerID     string      `json:"customer_id,omitempty"`
	CustomerEmail  string      `json:"customer_email,omitempty"`
	Status         string      `json:"status"`
	PaymentStatus  string      `json:"payment_status"`
	Total          string      `json:"total"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ProductName  string `json:"product_name"`
	VariantSize  string `json:"variant_size,omitempty"`
	VariantColor string `json:"variant_color,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
}

type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Notify publishes a notification event keyed by order number, so all
// events of one order stay ordered within a partition.
func (n *kafkaNotifier) Notify(ctx context.Context, order entities.Order, event entities.NotificationEvent) error {
	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  string(event),
		OccurredAt: time.Now().UTC(),
		Order:      orderToPayload(order),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Debug("notification published",
		slog.String("order_number", order.OrderNumber),
		slog.String("event", string(event)),
	)
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}

func orderToPayload(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductName:  it.ProductName,
			VariantSize:  it.VariantSize,
			VariantColor: it.VariantColor,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice.StringFixed(2),
		})
	}

	return Order{
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		CustomerEmail:  o.CustomerEmail,
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		Total:          o.Total.StringFixed(2),
		TrackingNumber: o.TrackingNumber,
		Items:          items,
	}
}
