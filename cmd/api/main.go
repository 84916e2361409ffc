// Package main is the entry point for the ContaComigo API.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/contacomigo/backend/internal/cli"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cli.Execute()
}
