package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/varungor365/fashun-order-service/docs"
	"github.com/varungor365/fashun-order-service/internal/app"
	"github.com/varungor365/fashun-order-service/internal/config"
	"github.com/varungor365/fashun-order-service/internal/handler"
	"github.com/varungor365/fashun-order-service/internal/notifier"
	"github.com/varungor365/fashun-order-service/internal/postgres"
	"github.com/varungor365/fashun-order-service/internal/repo"
	"github.com/varungor365/fashun-order-service/internal/service"
	"github.com/varungor365/fashun-order-service/pkg/cache"
	"github.com/varungor365/fashun-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Fashun Order Service API
// @version         1.0
// @description     Order fulfillment: cart reservation, status transitions, analytics
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	kafkaNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, productRepo, kafkaNotifier, orderCache)

	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(kafkaNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
