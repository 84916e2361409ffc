// Package cli wires the contacomigo command line: the API server and a few
// maintenance commands that operate on the stored state.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contacomigo/backend/config"
	"github.com/contacomigo/backend/internal/infra/dependency"
)

var rootCmd = &cobra.Command{
	Use:   "contacomigo",
	Short: "ContaComigo gamified finance backend",
	Long: `ContaComigo turns personal finance tracking into a game. Logging
transactions earns XP, keeps the daily streak alive and completes missions.
Run "contacomigo serve" to start the HTTP API.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildInjector loads the configuration and wires the application.
func buildInjector(ctx context.Context) (*dependency.Injector, error) {
	cfg := config.Load()
	inj, err := dependency.NewInjector(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return inj, nil
}
