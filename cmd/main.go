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

	"github.com/samandr77/moysklad-autolink/internal/api"
	"github.com/samandr77/moysklad-autolink/internal/clients/moysklad"
	"github.com/samandr77/moysklad-autolink/internal/repository"
	"github.com/samandr77/moysklad-autolink/internal/service"
	"github.com/samandr77/moysklad-autolink/pkg/broker"
	"github.com/samandr77/moysklad-autolink/pkg/config"
	"github.com/samandr77/moysklad-autolink/pkg/logger"
	"github.com/samandr77/moysklad-autolink/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	msClient := moysklad.NewClient(cfg.MoySklad)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.PaymentLinkedTopic)
	defer producer.Close()

	s := service.New(repo, msClient, msClient, msClient, producer,
		cfg.MoySklad.WebhookURL, cfg.MoySklad.HasCredentials())

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.JWTSecret)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
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

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
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
