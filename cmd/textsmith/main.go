// Package main provides the textsmith CLI: LLM-backed text utilities
// (summarizer, story generator, resume bullet generator) plus an HTTP
// server exposing them.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "textsmith",
	Short: "LLM-backed text utilities",
	Long:  "Textsmith summarizes text, generates short stories, and drafts resume bullet points using the Gemini API, from the command line or over HTTP.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
