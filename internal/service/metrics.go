package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fashun_orders",
		Subsystem: "fulfillment",
		Name:      "orders_created_total",
		Help:      "Total number of successfully created orders.",
	})

	ordersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fashun_orders",
		Subsystem: "fulfillment",
		Name:      "orders_rejected_total",
		Help:      "Total number of carts rejected during stock reservation.",
	}, []string{"reason"})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fashun_orders",
		Subsystem: "fulfillment",
		Name:      "orders_cancelled_total",
		Help:      "Total number of cancelled orders with released stock.",
	})

	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fashun_orders",
		Subsystem: "notifier",
		Name:      "notifications_sent_total",
		Help:      "Total number of notification events handed to the broker.",
	}, []string{"event"})

	notificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fashun_orders",
		Subsystem: "notifier",
		Name:      "notifications_failed_total",
		Help:      "Total number of notification events that could not be published.",
	})
)
