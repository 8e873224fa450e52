// Package story implements the story generator: given a prompt, produce
// a short generated narrative.
package story

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jonathan/textsmith/internal/llm"
	"github.com/jonathan/textsmith/internal/prompts"
	"github.com/jonathan/textsmith/internal/textutil"
)

const (
	// DefaultMaxWords is the default story length target.
	DefaultMaxWords = 200
	// DefaultTemperature favors creative over deterministic output.
	DefaultTemperature = 0.8
)

// ErrEmptyPrompt indicates there was no prompt to generate from.
var ErrEmptyPrompt = errors.New("story prompt is empty")

// Options tune a single story generation.
type Options struct {
	MaxWords    int
	Temperature float32
}

func (o Options) normalized() Options {
	if o.MaxWords <= 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.Temperature <= 0 {
		o.Temperature = DefaultTemperature
	}
	return o
}

// Generator produces narratives through an LLM client.
type Generator struct {
	client llm.Client
}

// New creates a Generator backed by the given client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate returns a narrative continuing the given prompt. The output
// is whitespace-normalized and trimmed to end on a complete sentence.
func (g *Generator) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	prompt = textutil.NormalizeWhitespace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	opts = opts.normalized()

	template, err := prompts.Get("story.json", "story")
	if err != nil {
		return "", err
	}
	fullPrompt := prompts.Format(template, map[string]string{
		"Prompt":   prompt,
		"MaxWords": strconv.Itoa(opts.MaxWords),
	})

	genOpts := &llm.GenOptions{
		Temperature: opts.Temperature,
		// Rough words-to-tokens ratio with headroom for the trailing trim
		MaxOutputTokens: int32(opts.MaxWords * 2),
	}
	text, err := g.client.GenerateText(ctx, fullPrompt, llm.TierAdvanced, genOpts)
	if err != nil {
		return "", err
	}

	story := textutil.TrimIncompleteSentence(text)
	if story == "" {
		return "", fmt.Errorf("model returned an empty story")
	}
	return story, nil
}
