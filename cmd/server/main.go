package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/admin"
	"vanta-be/internal/api"
	"vanta-be/internal/cart"
	"vanta-be/internal/changefeed"
	"vanta-be/internal/config"
	"vanta-be/internal/dashboard"
	"vanta-be/internal/db"
	"vanta-be/internal/flow"
	"vanta-be/internal/idempotency"
	"vanta-be/internal/logger"
	"vanta-be/internal/menu"
	"vanta-be/internal/metrics"
	"vanta-be/internal/middleware"
	"vanta-be/internal/notify"
	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
	"vanta-be/internal/subscription"
)

const (
	cartIdleTimeout = 2 * time.Hour
	shutdownTimeout = 15 * time.Second
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error {
		return srv.ListenAndServe()
	}
)

func main() {
	if len(os.Args) == 3 && os.Args[1] == "hash-passphrase" {
		hash, err := admin.HashPassphrase(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hash)
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newServer(ctx, cfg, database)
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("storefront server running", zap.String("addr", srv.Addr))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}

// server is the wired storefront. close stops its background work and waits
// for notifications still in flight.
type server struct {
	handler    http.Handler
	dispatcher *notify.Dispatcher
	cancel     context.CancelFunc
	closers    []func() error
}

func (s *server) close() {
	s.cancel()
	s.dispatcher.Wait()
	for _, c := range s.closers {
		if err := c(); err != nil {
			logger.L().Warn("close failed", zap.Error(err))
		}
	}
}

func newServer(parent context.Context, cfg *config.Config, database *sql.DB) *server {
	ctx, cancel := context.WithCancel(parent)
	s := &server{cancel: cancel}

	reg := metrics.NewRegistry()

	orderSvc := order.NewService(order.NewRepository(database))
	reservationSvc := reservation.NewService(reservation.NewRepository(database))
	subscriptionSvc := subscription.NewService(subscription.NewRepository(database))

	s.dispatcher = notify.NewDispatcher(
		notify.NewClient(cfg.RelayURL, cfg.RelayAnonKey, cfg.RelayTimeout),
		cfg.RelayTimeout,
		func(kind notify.Kind, ok bool) {
			if ok {
				reg.Inc("notify." + string(kind) + ".sent")
			} else {
				reg.Inc("notify." + string(kind) + ".failed")
			}
		},
	)

	deps := flow.Deps{
		Notify:  s.dispatcher,
		Guard:   newGuard(ctx, cfg, s),
		Metrics: reg,
	}

	sessions := cart.NewSessions(func(sessionID, message string) {
		logger.L().Debug("cart acknowledgment", zap.String("cart_session", sessionID), zap.String("message", message))
	})
	go sessions.RunJanitor(ctx, 10*time.Minute, cartIdleTimeout)

	feed := dashboard.NewFeed(orderSvc, reservationSvc)
	if src := newChangeSource(cfg, database, s); src != nil {
		go func() {
			if err := feed.Run(ctx, src); err != nil {
				logger.L().Error("dashboard feed stopped", zap.Error(err))
			}
		}()
	}

	h := api.NewHandler(api.Handler{
		Catalog:       menu.NewCatalog(),
		Sessions:      sessions,
		Checkout:      flow.NewCheckout(orderSvc, deps),
		Reservations:  flow.NewReservations(reservationSvc, deps),
		Subscriptions: flow.NewSubscriptions(subscriptionSvc, deps),
		Feed:          feed,
		Gate:          admin.NewGate(cfg.AdminPassphraseHash),
		Metrics:       reg,
	})

	limiter := middleware.NewRateLimiter()
	go limiter.RunCleanup(ctx, time.Minute, 3*time.Minute)

	var handler http.Handler = setupRouter(h.Routes())
	handler = limiter.Middleware(handler)
	handler = middleware.CORS(cfg.CORSOrigin)(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	s.handler = handler

	return s
}

// newGuard connects the idempotency guard. Without REDIS_URL, or when Redis
// is unreachable at start-up, submissions run unguarded.
func newGuard(ctx context.Context, cfg *config.Config, s *server) idempotency.Guard {
	if cfg.RedisURL == "" {
		return idempotency.NopGuard{}
	}

	client, err := idempotency.Connect(ctx, cfg.RedisURL)
	if err != nil {
		logger.L().Warn("redis unavailable, idempotency guard disabled", zap.Error(err))
		return idempotency.NopGuard{}
	}
	s.closers = append(s.closers, client.Close)
	return idempotency.NewRedisGuard(client, idempotency.DefaultTTL)
}

// newChangeSource picks how the dashboard hears about changes. FEED_MODE=off
// disables the live feed; the dashboard then refreshes on demand only.
func newChangeSource(cfg *config.Config, database *sql.DB, s *server) changefeed.Source {
	switch cfg.FeedMode {
	case "listen":
		src := changefeed.NewPGSource(db.DSN(cfg))
		s.closers = append(s.closers, src.Close)
		return src
	case "poll":
		return changefeed.NewPoller(changefeed.SQLFingerprint(database), cfg.FeedPollInterval)
	default:
		logger.L().Info("live dashboard feed disabled", zap.String("feed_mode", cfg.FeedMode))
		return nil
	}
}

func setupRouter(apiHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/api/", apiHandler)

	return mux
}
