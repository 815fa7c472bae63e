package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dreamsourcil/booking/api"
	"github.com/dreamsourcil/booking/config"
	"github.com/dreamsourcil/booking/internal/availability"
	"github.com/dreamsourcil/booking/internal/bootstrap"
	"github.com/dreamsourcil/booking/internal/cache"
	"github.com/dreamsourcil/booking/internal/catalog"
	"github.com/dreamsourcil/booking/internal/kafka"
	"github.com/dreamsourcil/booking/internal/schedule"
	"github.com/dreamsourcil/booking/internal/service/scheduling"
	"github.com/dreamsourcil/booking/internal/storage"
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

	policy, err := schedule.NewPolicy(schedule.Config{
		OpenWeekdays:    cfg.Schedule.OpenWeekdays,
		Opening:         cfg.Schedule.Opening,
		Closing:         cfg.Schedule.Closing,
		SlotStepMinutes: cfg.Schedule.SlotStepMinutes,
		LookaheadDays:   cfg.Schedule.LookaheadDays,
	})
	if err != nil {
		log.Fatalf("scheduling policy: %v", err)
	}
	engine := availability.NewEngine(policy)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	var store storage.BookingStore
	switch cfg.Storage.Backend {
	case "", "file":
		store = storage.NewFileStore(cfg.Storage.FilePath)
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Storage.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		store = storage.NewPGStore(pool)
	default:
		log.Fatalf("unknown storage backend %q", cfg.Storage.Backend)
	}

	var opts []scheduling.ServiceOption
	if cfg.Redis.Addr != "" {
		lockTTL := time.Duration(cfg.Booking.SlotLockTTLSeconds) * time.Second
		opts = append(opts, scheduling.WithLocker(cache.NewRedisLocker(cfg.Redis), lockTTL))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, scheduling.WithProducer(producer, cfg.Kafka.BookingsTopic, cfg.Kafka.NotificationsTopic))
	}

	service := scheduling.NewService(store, policy, engine, opts...)

	router := bootstrap.NewRouter(
		api.NewScheduleHandler(service, cat),
		api.NewBookingHandler(service, cat),
		api.NewCatalogHandler(cat, cfg.Salon),
	)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
