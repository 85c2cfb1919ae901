package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sqlpractice/internal/config"
	"sqlpractice/internal/logging"
	"sqlpractice/internal/server"
)

func main() {
	host := flag.String("host", "", "address to listen on (overrides HOST)")
	port := flag.Int("port", 0, "port to listen on (overrides PORT)")
	dbFile := flag.String("db", "", "practice database file (overrides DB_FILE)")
	flag.Parse()

	cfg, err := config.Load(config.Overrides{
		Host:   *host,
		Port:   *port,
		DBFile: *dbFile,
	})
	if err != nil {
		logging.GetLogger().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(logging.ParseLevel(cfg.LogLevel), os.Stderr)
	log := logging.WithComponent("main")

	srv, err := server.NewServer(context.Background(), cfg)
	if err != nil {
		log.Error("failed to start", "error", err)
		os.Exit(1)
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr(), "db", cfg.DBFile)
		if err := srv.ListenAndServe(); err != nil {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server exiting")
}
