// Package main boots the minimal-shop storefront API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fairyhunter13/minimal-shop/internal/cart"
	"github.com/fairyhunter13/minimal-shop/internal/catalog"
	"github.com/fairyhunter13/minimal-shop/internal/config"
	httpapi "github.com/fairyhunter13/minimal-shop/internal/http"
	"github.com/fairyhunter13/minimal-shop/internal/obs"
	"github.com/fairyhunter13/minimal-shop/internal/session"
	"github.com/fairyhunter13/minimal-shop/internal/storage"
)

func main() {
	cfg := config.Load()
	obs.InitLogger()
	obs.Logger.Info("service_starting")

	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		// The backend is a boot dependency; per-write failures later are
		// swallowed, but starting without durable storage is refused.
		obs.Logger.Fatal("storage_open_failed", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer kv.Close()

	sess := session.New(kv)
	cat := catalog.New(kv, catalog.Seed())
	crt := cart.New(kv)

	app := httpapi.NewApp(cfg, cat, crt, sess)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", zap.Error(err))
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", zap.String("signal", s.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", zap.Error(err))
	}
	obs.Logger.Info("service_stopped")
}
