package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/textsmith/internal/observability"
	"github.com/jonathan/textsmith/internal/story"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Generate a short story",
	Long:  "Generate a short story from a free prompt, or from a genre plus character, setting, and conflict.",
	RunE:  runStory,
}

var (
	storyPrompt    string
	storyGenre     string
	storyCharacter string
	storySetting   string
	storyConflict  string
	storyMaxWords  int
	storySuggest   bool
	storyVerbose   bool
)

func init() {
	storyCmd.Flags().StringVarP(&storyPrompt, "prompt", "p", "", "Free-form story prompt")
	storyCmd.Flags().StringVarP(&storyGenre, "genre", "g", "", "Story genre (adventure, mystery, romance, scifi, fantasy, horror)")
	storyCmd.Flags().StringVar(&storyCharacter, "character", "", "Main character for a guided prompt")
	storyCmd.Flags().StringVar(&storySetting, "setting", "", "Setting for a guided prompt")
	storyCmd.Flags().StringVar(&storyConflict, "conflict", "", "Conflict for a guided prompt")
	storyCmd.Flags().IntVar(&storyMaxWords, "max-words", 0, "Target story length in words (default 200)")
	storyCmd.Flags().BoolVar(&storySuggest, "suggest", false, "Print starter ideas instead of generating")
	storyCmd.Flags().BoolVarP(&storyVerbose, "verbose", "v", false, "Print the prompt alongside the story")

	rootCmd.AddCommand(storyCmd)
}

func runStory(_ *cobra.Command, _ []string) error {
	if storySuggest {
		observability.NewPrinter(os.Stdout).PrintStorySuggestions(story.Suggestions())
		return nil
	}

	prompt := storyPrompt
	if prompt == "" {
		if storyCharacter == "" || storySetting == "" || storyConflict == "" {
			return fmt.Errorf("provide --prompt, or --character, --setting, and --conflict together")
		}
		prompt = story.BuildPrompt(storyGenre, storyCharacter, storySetting, storyConflict)
	}

	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	maxWords := storyMaxWords
	if maxWords == 0 {
		maxWords = cfg.StoryMaxWords
	}

	narrative, err := story.New(client).Generate(ctx, prompt, story.Options{MaxWords: maxWords})
	if err != nil {
		return fmt.Errorf("failed to generate story: %w", err)
	}

	if storyVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintStory(prompt, narrative)
		return nil
	}
	fmt.Println(narrative)
	return nil
}
