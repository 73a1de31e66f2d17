package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"taskdeck/internal/config"
	"taskdeck/internal/db"
	"taskdeck/internal/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	configPath, err := config.DefaultPath()
	if err != nil {
		logger.Fatal("resolving config path", "err", err)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		logger.Fatal("loading config", "path", configPath, "err", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("opening database", "err", err)
	}
	defer database.Close()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(database, logger),
	}

	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
