package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/pantryhq/shoplist/api/v1"
	"github.com/pantryhq/shoplist/internal/config"
	"github.com/pantryhq/shoplist/internal/handlers"
	"github.com/pantryhq/shoplist/internal/server"
	"github.com/pantryhq/shoplist/internal/services"
	"github.com/pantryhq/shoplist/internal/store"
	"github.com/pantryhq/shoplist/internal/store/migrations"
)

func newServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cfg.AddServerFlags(cmd.Flags())
	return cmd
}

func serve(ctx context.Context, cfg *config.Configuration) error {
	if cfg.Store.DataFolder != "" {
		if err := os.MkdirAll(cfg.Store.DataFolder, 0o750); err != nil {
			return fmt.Errorf("failed to create data folder: %w", err)
		}
	}

	db, err := store.NewDB(cfg.Store.DBPath())
	if err != nil {
		return err
	}
	if err := migrations.Run(ctx, db); err != nil {
		db.Close()
		return err
	}

	st := store.NewStore(db)
	defer st.Close()

	h := handlers.New(
		services.NewItemService(st),
		services.NewShopService(st),
		services.NewSectionService(st),
	)

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		zap.S().Info("signal received, stopping")
		return srv.Stop(context.Background())
	}
}
