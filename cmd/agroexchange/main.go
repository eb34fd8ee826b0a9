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

	"github.com/nurpe/agroexchange/internal/charts"
	"github.com/nurpe/agroexchange/internal/config"
	"github.com/nurpe/agroexchange/internal/excel"
	httphandler "github.com/nurpe/agroexchange/internal/http"
	"github.com/nurpe/agroexchange/internal/logger"
	"github.com/nurpe/agroexchange/internal/pdf"
	"github.com/nurpe/agroexchange/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	sessions := service.NewSessions(cfg.Sessions, log)
	reports := service.NewReportService(sessions, excel.NewGenerator(), pdf.NewGenerator(), charts.NewRenderer(), cfg)

	handler := httphandler.NewHandler(sessions, reports, log)
	router := httphandler.NewRouter(handler, cfg, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("starting agroexchange service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
