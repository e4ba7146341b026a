package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/controllers"
	"github.com/catloaf567/boilergains/logger"
	"github.com/catloaf567/boilergains/routes"
	"github.com/catloaf567/boilergains/services"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	pairings, err := services.LoadPairings(cfg.Pairings)
	if err != nil {
		logger.Warn("pairing config unreadable, using built-in table",
			zap.String("path", cfg.Pairings), zap.Error(err))
	}

	controllers.Init(cfg,
		services.NewCatalogService(),
		services.NewSuggestService(cfg.Search, pairings),
		services.NewRecommendService(cfg.Recommend),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: routes.SetupRouter(cfg),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
