package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staybook/internal/app/services/bookings"
	"staybook/internal/app/services/properties"
	"staybook/internal/app/services/users"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	domainevents "staybook/internal/domain/shared/events"
	"staybook/internal/domain/user"
	"staybook/internal/infra/broker/kafka"
	"staybook/internal/infra/config"
	"staybook/internal/infra/db/mongo"
	ginserver "staybook/internal/infra/http/gin"
	"staybook/internal/infra/obs"
	"staybook/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	app, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}
	defer app.close(logger)

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	ready    func() error
	producer *kafka.Producer
}

func buildApplication(cfg config.Config, logger *slog.Logger) (*application, error) {
	app := &application{ready: func() error { return nil }}

	var (
		propertyRepo property.Repository
		userRepo     user.Repository
		bookingRepo  booking.Repository
	)
	switch cfg.StorageMode {
	case config.StorageMongo:
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		props := mongo.NewPropertyRepository(client.DB)
		guests := mongo.NewUserRepository(client.DB)
		propertyRepo = props
		userRepo = guests
		bookingRepo = mongo.NewBookingRepository(client.DB, props, guests)
		app.ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
	default:
		propertyRepo = memory.NewPropertyRepository()
		userRepo = memory.NewUserRepository()
		bookingRepo = memory.NewBookingRepository()
	}

	var publisher bookings.EventPublisher = logPublisher{logger: logger}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return nil, err
		}
		app.producer = producer
		publisher = kafka.EventPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}
	}

	propertySvc := properties.NewService(propertyRepo)
	userSvc := users.NewService(userRepo)
	bookingSvc := bookings.NewService(bookingRepo, propertyRepo, userRepo, publisher, logger)

	app.handlers = ginserver.Handlers{
		Property: ginserver.PropertyHandler{Service: propertySvc},
		User:     ginserver.UserHandler{Service: userSvc},
		Booking:  ginserver.BookingHandler{Service: bookingSvc},
	}
	return app, nil
}

func (a *application) close(logger *slog.Logger) {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			logger.Warn("kafka producer close failed", "error", err)
		}
	}
}

// logPublisher stands in for the broker when no Kafka brokers are configured.
type logPublisher struct {
	logger *slog.Logger
}

func (p logPublisher) Publish(ctx context.Context, event domainevents.DomainEvent) error {
	p.logger.Info("domain event", "event", event.EventName(), "aggregate_id", event.AggregateID(), "at", event.OccurredAt())
	return nil
}
