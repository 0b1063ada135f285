package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"deck-dealer/internal/config"
	"deck-dealer/internal/deck"
	"deck-dealer/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.Info("Starting dealer server...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var newRand func() deck.Rand
	if cfg.HasSeed {
		logrus.Infof("Decks seeded from %d", cfg.Seed)
		newRand = server.SeededRands(cfg.Seed)
	}
	hub := server.NewHub(newRand)
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWs(hub, w, r)
	})
	server.HandleStatic(mux, cfg.StaticDir)
	server.HandleRoutes(mux, hub)

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Warnf("Shutdown error: %v", err)
		}
	}()

	logrus.Infof("Listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}
