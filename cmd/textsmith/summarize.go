package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/textsmith/internal/fetch"
	"github.com/jonathan/textsmith/internal/observability"
	"github.com/jonathan/textsmith/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize text",
	Long:  "Summarize text from a flag, a file, or a fetched article URL into a bounded number of words.",
	RunE:  runSummarize,
}

var (
	summarizeText     string
	summarizeFile     string
	summarizeURL      string
	summarizeMaxWords int
	summarizeMinWords int
	summarizeVerbose  bool
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeText, "text", "t", "", "Text to summarize")
	summarizeCmd.Flags().StringVarP(&summarizeFile, "file", "f", "", "Path to a text file to summarize")
	summarizeCmd.Flags().StringVarP(&summarizeURL, "url", "u", "", "Article URL to fetch and summarize")
	summarizeCmd.Flags().IntVar(&summarizeMaxWords, "max-words", 0, "Maximum summary length in words (50-200, default 130)")
	summarizeCmd.Flags().IntVar(&summarizeMinWords, "min-words", 0, "Minimum summary length in words (10-100, default 30)")
	summarizeCmd.Flags().BoolVarP(&summarizeVerbose, "verbose", "v", false, "Print word counts and timing alongside the summary")

	summarizeCmd.MarkFlagsOneRequired("text", "file", "url")
	summarizeCmd.MarkFlagsMutuallyExclusive("text", "file", "url")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(_ *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	text := summarizeText
	switch {
	case summarizeFile != "":
		content, err := os.ReadFile(summarizeFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(content)
	case summarizeURL != "":
		article, err := fetch.Article(ctx, summarizeURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch article: %w", err)
		}
		text = article
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	maxWords := summarizeMaxWords
	if maxWords == 0 {
		maxWords = cfg.MaxWords
	}
	minWords := summarizeMinWords
	if minWords == 0 {
		minWords = cfg.MinWords
	}

	result, err := summarize.New(client).Summarize(ctx, text, summarize.Options{
		MaxWords: maxWords,
		MinWords: minWords,
	})
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}

	if summarizeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintSummary(result)
		return nil
	}
	fmt.Println(result.Summary)
	return nil
}
