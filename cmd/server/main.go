package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Kinimary/belwest/internal/api"
	"github.com/Kinimary/belwest/internal/repository"
	"github.com/Kinimary/belwest/internal/service"
	"github.com/Kinimary/belwest/pkg/broker"
	"github.com/Kinimary/belwest/pkg/config"
	"github.com/Kinimary/belwest/pkg/logger"
	"github.com/Kinimary/belwest/pkg/postgres"
	"github.com/Kinimary/belwest/pkg/token"
)

const shutdownTimeout = 10 * time.Second

type publisher interface {
	service.EventPublisher
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	var producer publisher = broker.NopProducer{}
	if len(cfg.KafkaBrokers) > 0 {
		producer = broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		slog.WarnContext(ctx, "KAFKA_BROKERS is empty, permission events are not published")
	}
	defer producer.Close()

	s := service.New(
		repository.NewPermissionRepository(pool),
		repository.NewUserRepository(pool),
		producer,
	)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(token.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           api.NewRouter(handler, mw),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTPPort)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
