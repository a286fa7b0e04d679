package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/catalog-feed-sync/cmd/feedsync/config"
	"github.com/MichalMitros/catalog-feed-sync/internal/catalog"
	"github.com/MichalMitros/catalog-feed-sync/internal/feed"
	"github.com/MichalMitros/catalog-feed-sync/internal/handler"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/blobstore"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/metrics"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/storage"
	"github.com/MichalMitros/catalog-feed-sync/internal/reprocess"
	"github.com/MichalMitros/catalog-feed-sync/internal/scheduler"
	"github.com/MichalMitros/catalog-feed-sync/internal/syncer"
	"github.com/MichalMitros/catalog-feed-sync/internal/throttle"
	"github.com/MichalMitros/catalog-feed-sync/pkg/v1/jobs"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when calling external APIs.
	UserAgent = "catalog-feed-sync/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, rabbitmq.WithWorkers(cfg.Workers))
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)
	registry := prometheus.NewRegistry()
	mtr := metrics.New(registry)

	syn := syncer.NewSyncer(
		catalog.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent, cfg.RateLimit, throttle.NewController()),
		store,
		cfg.BatchSize,
	)
	generator := feed.NewGenerator(
		store,
		blobstore.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.BlobStore.URL, cfg.BlobStore.APIKey, UserAgent),
		feed.WithLogger(logger),
	)
	reprocessor := reprocess.NewReprocessor(store, cfg.BatchSize)
	commander := jobs.NewCommander(jobs.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey))

	han := handler.NewHandler(conn, syn, generator, reprocessor, store, commander, mtr, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	if cfg.Scheduler.Enabled {
		sch := scheduler.NewScheduler(
			store,
			commander,
			cfg.Scheduler.Interval,
			cfg.Scheduler.Stagger,
			scheduler.WithFeedDelay(cfg.Scheduler.FeedDelay),
			scheduler.WithLogger(logger),
		)
		go func() {
			if err := sch.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error().
					Err(err).
					Msg("scheduler stopped")
			}
		}()
	}

	metricsServer := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().
				Err(err).
				Msg("metrics server stopped")
		}
	}()

	logger.Info().Msg("catalog feed sync up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		if err := metricsServer.Shutdown(context.Background()); err != nil {
			logger.Error().
				Err(err).
				Msg("can't shut down metrics server")
		}
	}()

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
