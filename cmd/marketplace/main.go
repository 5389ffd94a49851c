// Package main provides the entry point for the creator marketplace API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Creator Marketplace API Server",
	Long:  "Creator Marketplace connects brand campaigns with content creators, scoring compatibility from Brand-Fit survey data and surfacing admin intelligence over brand activity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
