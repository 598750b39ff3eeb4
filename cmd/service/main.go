package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-sync/internal/client/history"
	"github.com/s21platform/chat-sync/internal/client/realtime"
	"github.com/s21platform/chat-sync/internal/config"
	"github.com/s21platform/chat-sync/internal/infra"
	"github.com/s21platform/chat-sync/internal/model"
	"github.com/s21platform/chat-sync/internal/pkg/token"
	"github.com/s21platform/chat-sync/internal/pkg/validator"
	"github.com/s21platform/chat-sync/internal/rest"
	"github.com/s21platform/chat-sync/internal/sync"
)

const sendTimeoutSweepInterval = time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	historyClient := history.New(cfg)
	defer historyClient.Close()

	connectToken, err := historyClient.GetConnectToken(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch connect token: %v", err))
		return
	}

	selfID, _, err := token.Inspect(connectToken)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to inspect connect token: %v", err))
		return
	}

	var engine *sync.Engine
	transport := realtime.New(cfg, historyClient.GetConnectToken, func(ctx context.Context, ev model.Event) {
		engine.HandleEvent(ctx, ev)
	}, logger, metrics)
	defer transport.Close()

	engine = sync.NewEngine(transport, historyClient, logger, metrics, selfID, sync.Options{
		AckRecencyWindow: cfg.Sync.AckRecencyWindow,
		SendTimeout:      cfg.Sync.SendTimeout,
		TypingDebounce:   cfg.Sync.TypingDebounce,
	})

	vldtr := validator.New()
	handler := rest.New(engine, vldtr)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	handler.Register(router)

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := transport.Run(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("realtime channel error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(sendTimeoutSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case now := <-ticker.C:
				if failed := engine.FailTimedOut(now); failed > 0 {
					logger.Warn(fmt.Sprintf("marked %d pending sends as failed", failed))
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
