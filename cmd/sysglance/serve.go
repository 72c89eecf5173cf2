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

	"github.com/sysglance/sysglance/internal/collector"
	"github.com/sysglance/sysglance/internal/config"
	"github.com/sysglance/sysglance/internal/server"
	"github.com/sysglance/sysglance/internal/source"
	"github.com/sysglance/sysglance/internal/version"
)

var (
	serveAddr     string
	serveInterval time.Duration
	serveLogLevel string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", 0, "stream push interval (overrides config)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.CLIOverrides{Addr: serveAddr, Interval: serveInterval, LogLevel: serveLogLevel})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	logger.Info("Starting sysglance",
		zap.String("version", version.Version),
		zap.String("addr", cfg.Server.Addr),
		zap.Duration("interval", cfg.Stream.Interval.Duration))

	gin.SetMode(gin.ReleaseMode)
	col := collector.New(source.OS(), logger)
	srv := server.New(cfg, col, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Cancelling ctx detaches the push streams so Shutdown can drain them.
	httpSrv := srv.HTTPServer(ctx)

	// Handle OS signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
