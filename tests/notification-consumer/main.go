package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
)

// Tails the notification topic, useful when checking what the email
// service would receive.
func main() {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{"localhost:9092"},
		GroupID: "notification-consumer-debug",
		Topic:   "order-notifications",
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			return
		}
		log.Printf("key=%s value=%s", m.Key, m.Value)
	}
}
