package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/server"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web visualiser",
		Long: `Serve the HTTP API and websocket run stream.

With --watch and --config, edits to render.frame_delay in the config file
apply to runs started afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a, watch)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file on change")
	return cmd
}

func serve(ctx context.Context, a *app, watch bool) error {
	if !a.cfg.Log.Dev {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(a.cfg, server.WithLogger(a.log))

	if watch && a.configPath != "" {
		if _, err := config.Watch(a.configPath, a.log, func(next *config.Config) {
			srv.SetFrameDelay(next.Render.FrameDelay)
		}); err != nil {
			return err
		}
		a.log.Info("watching config", zap.String("file", a.configPath))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down", zap.Duration("grace", shutdownGrace))
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
