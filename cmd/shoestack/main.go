package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shoestackclub/shoestack/internal/cache"
	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/events"
	"github.com/shoestackclub/shoestack/internal/logging"
	"github.com/shoestackclub/shoestack/internal/mongo"
	"github.com/shoestackclub/shoestack/internal/store"
	"github.com/shoestackclub/shoestack/internal/telemetry"
)

const (
	appNamespace = "SHOESTACK"
	appName      = "shoestack"
	appVersion   = "0.1.0"
)

func main() {
	cfg, err := config.Load(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel := cfg.GetStringOrDef("log.level", "info")
	logger := logging.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	var tp *telemetry.Provider
	if cfg.GetBool("telemetry.enabled") {
		tp, err = telemetry.NewProvider()
		if err != nil {
			log.Fatalf("%s(%s) cannot start telemetry: %v", appName, appVersion, err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	baseRepo := mongo.NewBaseRepo(cfg, logger)
	if err := baseRepo.Start(ctx); err != nil {
		log.Fatalf("%s(%s) cannot start base repository: %v", appName, appVersion, err)
	}
	defer func() {
		if err := baseRepo.Stop(context.Background()); err != nil {
			logger.Error("base repository stop failed", "error", err)
		}
	}()

	db := baseRepo.GetDatabase()
	if db == nil {
		log.Fatalf("%s(%s) cannot initialize repository database: %v", appName, appVersion, errors.New("repository database is nil"))
	}

	repos := store.Repos{
		Suppliers:    mongo.NewSupplierRepo(db),
		Products:     mongo.NewProductRepo(db),
		Customers:    mongo.NewCustomerRepo(db),
		Orders:       mongo.NewOrderRepo(db),
		OrderDetails: mongo.NewOrderDetailRepo(db),
		Shipments:    mongo.NewShipmentRepo(db),
	}

	natsURL := cfg.GetStringOrDef("nats.url", "nats://localhost:4222")
	pub, err := events.NewNATSPublisher(natsURL)
	if err != nil {
		logger.Error("cannot connect to NATS, events disabled", "error", err, "url", natsURL)
		pub = nil
	} else {
		defer pub.Close()
	}

	var queryCache *cache.Cache
	if redisURL := cfg.GetStringOrDef("redis.url", ""); redisURL != "" {
		ttl, ok := cfg.GetDuration("queries.cache.ttl")
		if !ok {
			ttl = 30 * time.Second
		}
		queryCache, err = cache.New(redisURL, ttl, logger)
		if err != nil {
			logger.Error("cannot connect to redis, query caching disabled", "error", err, "url", redisURL)
			queryCache = nil
		} else {
			defer queryCache.Close()
		}
	}

	if queryCache != nil {
		sub, err := events.NewNATSSubscriber(natsURL)
		if err != nil {
			logger.Error("cannot connect NATS subscriber, cache invalidation disabled", "error", err)
		} else {
			defer sub.Close()
			invalidator := store.NewQueryCacheInvalidator(sub, queryCache, logger)
			if err := invalidator.Start(ctx); err != nil {
				logger.Error("cannot start query cache invalidator", "error", err)
			}
		}
	}

	hd := store.HandlerDeps{
		Repos:     repos,
		Queries:   store.NewQueryService(repos, queryCache, cfg, logger),
		Publisher: publisherOrNil(pub),
	}
	handler := store.NewHandler(hd, cfg, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	handler.RegisterRoutes(router)

	var httpHandler http.Handler = router
	if tp != nil {
		httpHandler = telemetry.WrapHandler(router, appName)
	}

	addr := cfg.GetStringOrDef("web.addr", ":8080")
	server := &http.Server{
		Addr:    addr,
		Handler: httpHandler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting %s(%s) on %s", appName, appVersion, addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		timeout, ok := cfg.GetDuration("shutdown.timeout")
		if !ok {
			timeout = 15 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
		}
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}

// publisherOrNil avoids wrapping a nil *NATSPublisher in a non-nil
// interface value.
func publisherOrNil(p *events.NATSPublisher) events.Publisher {
	if p == nil {
		return nil
	}
	return p
}
