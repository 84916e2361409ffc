package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API together with the scheduled jobs (day rollover,
rate limiter cleanup, email purge) and the milestone email worker when enabled.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inj, err := buildInjector(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := inj.Close(); err != nil {
			slog.Error("Failed to close state backend", "error", err)
		}
	}()

	cfg := inj.Config
	slog.Info("Starting ContaComigo API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"state_backend", cfg.Engine.StateBackend,
	)

	var wg sync.WaitGroup
	if cfg.Scheduler.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inj.Scheduler.Start(ctx)
		}()
	}
	if inj.EmailWorker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inj.EmailWorker.Start(ctx)
		}()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      inj.Router.Setup(cfg.Server.Environment),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		wg.Wait()
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	wg.Wait()

	slog.Info("Server exited properly")
	return nil
}
