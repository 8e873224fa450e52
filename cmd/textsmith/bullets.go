package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/textsmith/internal/bullets"
	"github.com/jonathan/textsmith/internal/observability"
)

var bulletsCmd = &cobra.Command{
	Use:   "bullets",
	Short: "Generate resume bullet points",
	Long:  "Generate resume bullet points for a comma-separated list of skills, grounded in a job or project context.",
	RunE:  runBullets,
}

var (
	bulletsSkills  string
	bulletsContext string
	bulletsCount   int
	bulletsSuggest bool
)

func init() {
	bulletsCmd.Flags().StringVarP(&bulletsSkills, "skills", "s", "", "Comma-separated skills to generate bullets for")
	bulletsCmd.Flags().StringVarP(&bulletsContext, "context", "c", "", "Job or project context the bullets should reflect")
	bulletsCmd.Flags().IntVarP(&bulletsCount, "count", "n", 0, "Bullets per skill (default 3, max 10)")
	bulletsCmd.Flags().BoolVar(&bulletsSuggest, "suggest", false, "Print common skills by industry instead of generating")

	rootCmd.AddCommand(bulletsCmd)
}

func runBullets(_ *cobra.Command, _ []string) error {
	if bulletsSuggest {
		observability.NewPrinter(os.Stdout).PrintSkillSuggestions(bullets.SkillSuggestions())
		return nil
	}

	if bulletsSkills == "" {
		return fmt.Errorf("--skills is required (or use --suggest for ideas)")
	}
	if bulletsContext == "" {
		return fmt.Errorf("--context is required")
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

	count := bulletsCount
	if count == 0 {
		count = cfg.BulletsPerSkill
	}

	result, err := bullets.New(client).Generate(ctx, bullets.ParseSkills(bulletsSkills), bulletsContext, bullets.Options{
		PerSkill: count,
	})
	if err != nil {
		return fmt.Errorf("failed to generate bullets: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintBullets(result)
	return nil
}
