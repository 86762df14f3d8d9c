// Package main provides the entry point for the Skill Judge resume
// evaluation service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skilljudge",
	Short: "Deterministic resume evaluation service",
	Long: "Skill Judge extracts structural and content signals from resumes, scores them " +
		"with deterministic rules and compares extracted skills against a role catalog.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
