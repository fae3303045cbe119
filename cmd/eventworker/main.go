package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/config"
	"github.com/cinenotify/notification-service/internal/rabbitmq/queue"
	eventrepo "github.com/cinenotify/notification-service/internal/repository/event"
	notifrepo "github.com/cinenotify/notification-service/internal/repository/notification"
	"github.com/cinenotify/notification-service/internal/sendtime"
	eventsvc "github.com/cinenotify/notification-service/internal/service/event"
	"github.com/cinenotify/notification-service/internal/template"
	"github.com/cinenotify/notification-service/internal/upstream"
	"github.com/cinenotify/notification-service/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	eventQueue, err := queue.NewEventQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
	}

	notifQueue, err := queue.NewNotificationQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	eventRepo := eventrepo.NewRepository(db, cfg.Database.EventTable)
	notifRepo := notifrepo.NewRepository(db, cfg.Database.NotificationTable)

	dispatcher := eventsvc.NewDispatcher(
		eventRepo,
		notifRepo,
		notifQueue,
		template.NewRegistry(),
		sendtime.NewCalculator(cfg.Nighttime),
		func() eventsvc.EnrichClients {
			return upstream.NewClients(cfg.Services, rdb, cfg.Retry)
		},
		val,
		cfg.Retry,
	)

	w := worker.NewEventWorker(eventQueue, dispatcher)

	if err := w.Run(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("event worker exited with error")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
