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

	"go.uber.org/zap"

	"vanta-be/internal/config"
	"vanta-be/internal/logger"
	"vanta-be/internal/notify"
	"vanta-be/internal/relay"
)

var (
	ErrMissingTelegram = errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")

	startServerFunc = func(srv *http.Server) error {
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// The relay has no database; only the relay settings matter.
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrMissingDatabase) {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
		return ErrMissingTelegram
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := relay.NewHandler(relay.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID), cfg.RelayAnonKey)
	srv := &http.Server{
		Addr:              ":" + cfg.RelayPort,
		Handler:           logger.RequestIDMiddleware(logger.LoggingMiddleware(setupRouter(h))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("notification relay running", zap.String("addr", srv.Addr))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}

func setupRouter(h http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle(notify.Path, h)

	return mux
}
