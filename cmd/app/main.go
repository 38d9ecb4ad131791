package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bookingapi"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/cache"
	"github.com/Domenick1991/hotelbooking/internal/inventory"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/catalog"
	"github.com/Domenick1991/hotelbooking/internal/service/session"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Booking.CatalogCacheTTL)*time.Second,
		time.Duration(cfg.Booking.SessionTTLMinutes)*time.Minute,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	timeout := time.Duration(cfg.Inventory.TimeoutSeconds) * time.Second
	inventoryClient := inventory.NewClient(cfg.Inventory.BaseURL, timeout)
	submitter := bookingapi.NewClient(cfg.Inventory.BookingURL, timeout)
	historyRepo := repository.NewBookingHistoryRepository(pool)

	catalogService := catalog.NewCatalogService(inventoryClient, redisCache)

	store := session.NewStore()
	go store.Run(ctx)

	sessionService := session.NewSessionService(
		store,
		catalogService,
		submitter,
		cfg.Booking.MaxQuantityPerItem,
		cfg.Booking.MaxBookingAmount,
		session.WithProducer(producer, cfg.Kafka.BookingTopic, cfg.Kafka.NotificationsTopic),
		session.WithHistory(historyRepo),
		session.WithSnapshots(redisCache),
	)

	if err := bootstrap.Run(ctx, cfg, catalogService, sessionService, historyRepo); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
