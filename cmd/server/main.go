package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	claimemitter "dict-bridge/internal/claims/emitter"
	"dict-bridge/internal/claims/handler"
	"dict-bridge/internal/claims/metrics"
	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/service"
	claimstore "dict-bridge/internal/claims/store/claim"
	keystore "dict-bridge/internal/claims/store/key"
	"dict-bridge/internal/directory"
	"dict-bridge/internal/platform/config"
	"dict-bridge/internal/platform/httpserver"
	"dict-bridge/internal/platform/kafka/consumer"
	"dict-bridge/internal/platform/kafka/producer"
	"dict-bridge/internal/platform/logger"
	"dict-bridge/internal/platform/redis"
)

const sweepLockKey = "dict-bridge:sweep:leader"

// main wires the claim lifecycle: stores, directory gateway, Kafka transport,
// the sweeper, and the ops HTTP surface. Business logic lives in
// internal/claims.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.Participant == "" {
		log.Error("DICT_PARTICIPANT_ISPB is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores.
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("connect postgres pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	keys := keystore.NewPostgres(pool)

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Error("open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	claims := claimstore.NewPostgres(db)

	rdb, err := redis.New(cfg.RedisAddr)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Transport.
	prod, err := producer.New(cfg.KafkaBrokers)
	if err != nil {
		log.Error("connect kafka producer", "error", err)
		os.Exit(1)
	}
	defer prod.Close()

	topics := claimemitter.Topics{
		OwnershipEvents:   cfg.OwnershipTopic,
		PortabilityEvents: cfg.PortabilityTopic,
		ClaimSucceeded:    cfg.SucceededTopic,
		ClaimFailed:       cfg.FailedTopic,
	}
	if err := prod.EnsureTopics(ctx, 6,
		topics.OwnershipEvents, claimemitter.DeadLetterTopic(topics.OwnershipEvents),
		topics.PortabilityEvents, claimemitter.DeadLetterTopic(topics.PortabilityEvents),
		topics.ClaimSucceeded, topics.ClaimFailed,
	); err != nil {
		log.Error("ensure topics", "error", err)
		os.Exit(1)
	}

	emitter, err := claimemitter.New(prod, topics)
	if err != nil {
		log.Error("build emitter", "error", err)
		os.Exit(1)
	}

	gateway, err := directory.New(cfg.DirectoryURL)
	if err != nil {
		log.Error("build directory client", "error", err)
		os.Exit(1)
	}

	// Services.
	m := metrics.New()
	transitioner, err := service.NewTransitioner(keys, claims, gateway, emitter, emitter, cfg.Participant, log,
		service.WithMetrics(m),
		service.WithMaxDispatches(cfg.DeadLetterMaxDispatches),
	)
	if err != nil {
		log.Error("build transitioner", "error", err)
		os.Exit(1)
	}
	deadLetter, err := service.NewDeadLetter(keys, emitter, log, service.WithDeadLetterMetrics(m))
	if err != nil {
		log.Error("build dead-letter service", "error", err)
		os.Exit(1)
	}
	sweeper, err := service.NewSweeper(keys, claims, emitter, cfg.ClaimExpiry, log, service.WithSweeperMetrics(m))
	if err != nil {
		log.Error("build sweeper", "error", err)
		os.Exit(1)
	}

	// Inbound routing: one phase handler and one dead-letter handler per
	// claim type.
	router := handler.NewRouter(log)
	router.Register(topics.OwnershipEvents,
		handler.NewPhaseHandler(transitioner, models.ClaimTypeOwnership, log))
	router.Register(topics.PortabilityEvents,
		handler.NewPhaseHandler(transitioner, models.ClaimTypePortability, log))
	router.Register(claimemitter.DeadLetterTopic(topics.OwnershipEvents),
		handler.NewDeadLetterHandler(transitioner, deadLetter, models.ClaimTypeOwnership, log))
	router.Register(claimemitter.DeadLetterTopic(topics.PortabilityEvents),
		handler.NewDeadLetterHandler(transitioner, deadLetter, models.ClaimTypePortability, log))

	cons, err := consumer.New(consumer.Config{
		Brokers: cfg.KafkaBrokers,
		Group:   cfg.ConsumerGroup,
		Topics: []string{
			topics.OwnershipEvents,
			topics.PortabilityEvents,
			claimemitter.DeadLetterTopic(topics.OwnershipEvents),
			claimemitter.DeadLetterTopic(topics.PortabilityEvents),
		},
	}, router, log)
	if err != nil {
		log.Error("connect kafka consumer", "error", err)
		os.Exit(1)
	}
	defer cons.Close()

	// Ops HTTP surface.
	mux := chi.NewRouter()
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := rdb.Health(r.Context()); err != nil {
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())
	handler.NewOps(sweeper, log).Register(mux)
	srv := httpserver.New(cfg.Addr, mux)

	sweepLock := redis.NewMutex(rdb, sweepLockKey, cfg.SweepInterval)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("consuming claim events", "group", cfg.ConsumerGroup)
		return cons.Run(groupCtx)
	})
	group.Go(func() error {
		log.Info("sweeper running", "interval", cfg.SweepInterval, "threshold", cfg.ClaimExpiry)
		return sweeper.Run(groupCtx, cfg.SweepInterval, sweepLock, models.ReasonDefaultOperation)
	})
	group.Go(func() error {
		log.Info("ops server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("service stopped", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
