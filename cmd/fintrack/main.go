package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/fintrack/internal/config"
	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/shell"
	"max.ks1230/fintrack/internal/model/storage"
	"max.ks1230/fintrack/internal/tracing"
)

const configEnvKey = "FINTRACK_CONFIG"

func configPath() string {
	if path := os.Getenv(configEnvKey); path != "" {
		return path
	}
	return config.DefaultFile
}

func main() {
	_ = godotenv.Load()

	path := flag.String("config", configPath(), "path to the YAML config file")
	flag.Parse()

	conf, err := config.New(*path)
	if err != nil {
		log.Fatal("failed to init config:", err)
	}

	l, err := logger.New(conf.App())
	if err != nil {
		log.Fatal("failed to init logger:", err)
	}
	defer func() { _ = l.Sync() }()

	l.Info("Fintrack init - start")

	closer, err := tracing.Init(conf.Tracing(), l)
	if err != nil {
		l.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() { _ = closer.Close() }()

	serveMetrics(conf.Metrics().Addr(), l)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	stores := shell.Stores{
		JSON: storage.NewJSONStore(conf.Storage(), l),
		CSV:  storage.NewCSVStore(conf.Storage(), l),
	}
	if conf.Postgres().Enabled() {
		db, err := storage.NewPostgresStorage(conf.Postgres(), l)
		if err != nil {
			l.Fatal("failed to init postgres", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if err = db.EnsureSchema(ctx); err != nil {
			l.Fatal("failed to prepare postgres schema", zap.Error(err))
		}
		stores.DB = db
	}

	sh := shell.New(os.Stdin, os.Stdout, stores, l)

	l.Info("Fintrack init - end")

	// The shell blocks on stdin, so an interrupt is awaited next to it rather than inside it.
	done := make(chan error, 1)
	go func() {
		done <- sh.Run(ctx)
	}()

	select {
	case err = <-done:
		if err != nil {
			l.Error("shell stopped", zap.Error(err))
		}
	case <-ctx.Done():
		l.Info("interrupted")
	}
}

func serveMetrics(addr string, l *zap.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		l.Info("serving metrics", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("metrics endpoint stopped", zap.Error(err))
		}
	}()
}
