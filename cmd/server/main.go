package main

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/astroport-fi/astro-zap/internal/config"
	"github.com/astroport-fi/astro-zap/internal/service"
	transport "github.com/astroport-fi/astro-zap/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("buildLogger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	svc := service.NewZapService(logger)
	srv := transport.NewServer(svc, cfg, logger)

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal("srv.ListenAndServe", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
