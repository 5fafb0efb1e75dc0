package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zonelight/refactor/internal/config"
	"zonelight/refactor/internal/corner"
	"zonelight/refactor/internal/indicator"
	"zonelight/refactor/internal/logger"
	"zonelight/refactor/internal/preview"
	"zonelight/refactor/internal/zone"
)

func main() {
	cfg := config.Get()

	logger.Init()

	previewAddr := ""
	if cfg.Preview {
		previewAddr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	}
	logger.Banner(cfg.ZoneFile, previewAddr)

	strip := indicator.NewStrip()
	ctrl := corner.New(strip, zone.NewFile(cfg.ZoneFile, cfg.MaxDepth))
	if err := ctrl.LoadFile(); err != nil {
		// Failure is shown on the strip; keep running so it stays visible.
		logger.Warn("zone file invalid, holding fallback")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go indicator.RunHeartbeat(ctx, strip, cfg.Heartbeat)

	if !cfg.Preview {
		<-ctx.Done()
		logger.Info("Stopped")
		return
	}

	srv := &http.Server{
		Addr:              previewAddr,
		Handler:           preview.NewRouter(ctrl, cfg.APIKey),
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		logger.Info("Preview listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			_, _ = fmt.Fprintln(os.Stderr, err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down preview...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}
	logger.Info("Stopped")
}
