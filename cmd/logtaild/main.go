// Command logtaild serves reverse-paged log tail searches over HTTP.
// It exposes GET /logs for searches and GET /healthz for liveness
// checks, reading its settings from CLI flags, LOGTAIL_-prefixed
// environment variables, and an optional config file, in that
// precedence order.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dball/logtail/internal/config"
	"github.com/dball/logtail/internal/constants"
	"github.com/dball/logtail/internal/httpapi"
	"github.com/dball/logtail/internal/logger"
	"github.com/dball/logtail/internal/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "logtaild",
		Short:   "Reverse-paged log tail search daemon",
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}
	if err := config.BindFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

func run(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.Start(logger.Mode{
		ToStdout: cfg.LogToStdout,
		ToFile:   cfg.LogToFile,
		LogDir:   cfg.LogDir,
		Debug:    cfg.Debug,
	})
	defer logger.Stop()

	logger.Info("starting", version.String(), cfg.BindAddress, cfg.LogsDir)

	store := config.NewStore(cfg)
	stopWatch := config.WatchFile(v, func(next *config.ServerConfig) {
		logger.Info("config reloaded")
		store.Set(next)
	})
	defer stopWatch()

	server := httpapi.NewServer(store)
	httpServer := &http.Server{
		Addr:    cfg.BindAddress,
		Handler: server.Routes(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serveErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening", cfg.BindAddress)
		serveErrCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErrCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down, draining in-flight searches")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownGraceDuration)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
