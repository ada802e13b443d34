package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"weathercli.app/internal/cli"
)

func main() {
	// Load environment variables from .env file if present. Variables
	// already set in the environment win over .env values.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
