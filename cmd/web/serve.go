package main

import (
	"context"
	"errors"
	"fmt"
	"grader/internal/api"
	"grader/internal/buildinfo"
	"grader/internal/config"
	"grader/pkg/logger"
	"grader/pkg/metrics"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the web command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "web",
		Short:         "Serve a static HTML file over HTTP",
		Version:       buildinfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.ListenAddr())
			if err != nil {
				return fmt.Errorf("could not listen on %s: %w", cfg.ListenAddr(), err)
			}

			return serve(ctx, cfg, ln, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("config", "", "Config file path (environment variables only when empty)")

	return cmd
}

// serve runs the page server, and the admin server when configured, on ln
// until ctx is done, then shuts both down gracefully.
func serve(ctx context.Context, cfg *config.Config, ln net.Listener, stdout io.Writer) error {
	deps := api.Deps{}

	var admin *http.Server
	if cfg.HTTP.AdminAddr != "" {
		provider, err := metrics.NewProvider()
		if err != nil {
			return err
		}
		deps.Meter = provider.Meter("grader/web")
		admin = api.NewAdminServer(cfg.HTTP.AdminAddr, cfg.HTTP.MetricsPath, provider)
	}

	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("page server: %w", err)
		}
	}()
	if admin != nil {
		go func() {
			logger.Info(ctx, "starting admin server...", zap.String("addr", admin.Addr))
			if err := admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("admin server: %w", err)
			}
		}()
	}

	port := ln.Addr().(*net.TCPAddr).Port
	fmt.Fprintf(stdout, "Listening on %d\n", port)
	logger.Info(ctx, "serving page", zap.Int("port", port), zap.String("html_file", cfg.HTTP.HTMLFile))

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		logger.Error(ctx, "server failed", zap.Error(serveErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	logger.Info(ctx, "stopping webserver...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "could not stop webserver", zap.Error(err))
	}
	if admin != nil {
		if err := admin.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "could not stop admin server", zap.Error(err))
		}
	}

	return serveErr
}
