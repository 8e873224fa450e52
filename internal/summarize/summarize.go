// Package summarize implements the text summarizer: given a block of
// text, produce a shorter text preserving the salient content.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/textsmith/internal/llm"
	"github.com/jonathan/textsmith/internal/prompts"
	"github.com/jonathan/textsmith/internal/textutil"
)

const (
	// MinInputWords is the minimum input size worth summarizing.
	MinInputWords = 50
	// chunkChars is the per-request input ceiling; longer inputs are
	// split at sentence boundaries and summarized per chunk.
	chunkChars = 4096

	// DefaultMaxWords and DefaultMinWords are the default summary bounds.
	DefaultMaxWords = 130
	DefaultMinWords = 30

	maxWordsFloor = 50
	maxWordsCeil  = 200
	minWordsFloor = 10
	minWordsCeil  = 100
)

// TooShortMessage is returned as the summary for inputs below MinInputWords.
const TooShortMessage = "Text is too short to summarize meaningfully."

// ErrEmptyInput indicates there was no text to summarize.
var ErrEmptyInput = errors.New("input text is empty")

// Options bound the summary length in words.
type Options struct {
	MaxWords int
	MinWords int
}

// normalized returns options with defaults applied and values clamped to
// the supported ranges.
func (o Options) normalized() Options {
	if o.MaxWords == 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.MinWords == 0 {
		o.MinWords = DefaultMinWords
	}
	o.MaxWords = clamp(o.MaxWords, maxWordsFloor, maxWordsCeil)
	o.MinWords = clamp(o.MinWords, minWordsFloor, minWordsCeil)
	if o.MinWords > o.MaxWords {
		o.MinWords = o.MaxWords
	}
	return o
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Result is a single summarization outcome.
type Result struct {
	Summary           string  `json:"summary"`
	OriginalWords     int     `json:"original_length"`
	SummaryWords      int     `json:"summary_length"`
	ProcessingSeconds float64 `json:"processing_time"`
}

// Summarizer produces summaries through an LLM client.
type Summarizer struct {
	client llm.Client
}

// New creates a Summarizer backed by the given client.
func New(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize returns a summary of text bounded by opts. Inputs shorter
// than MinInputWords get the defined too-short result without a model
// call. The returned summary is never longer than the input.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts Options) (*Result, error) {
	text = textutil.NormalizeWhitespace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	opts = opts.normalized()

	originalWords := textutil.WordCount(text)
	if originalWords < MinInputWords {
		return &Result{
			Summary:       TooShortMessage,
			OriginalWords: originalWords,
		}, nil
	}

	start := time.Now()

	var summary string
	var err error
	if len(text) > chunkChars {
		summary, err = s.summarizeChunked(ctx, text, opts)
	} else {
		summary, err = s.call(ctx, "summarize", text, opts)
	}
	if err != nil {
		return nil, err
	}

	summary = textutil.NormalizeWhitespace(summary)
	if summary == "" {
		return nil, fmt.Errorf("model returned an empty summary")
	}
	// A summary must not be longer than what it summarizes
	if textutil.WordCount(summary) > originalWords {
		summary = textutil.TruncateWords(summary, originalWords)
	}

	return &Result{
		Summary:           summary,
		OriginalWords:     originalWords,
		SummaryWords:      textutil.WordCount(summary),
		ProcessingSeconds: roundSeconds(time.Since(start)),
	}, nil
}

// summarizeChunked splits long text at sentence boundaries, summarizes
// each chunk, and condenses the joined chunk summaries once more if they
// still exceed the word budget.
func (s *Summarizer) summarizeChunked(ctx context.Context, text string, opts Options) (string, error) {
	chunks := textutil.ChunkBySentences(text, chunkChars)

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := s.call(ctx, "summarize_chunk", chunk, opts)
		if err != nil {
			return "", fmt.Errorf("failed to summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, textutil.NormalizeWhitespace(summary))
	}

	combined := strings.Join(summaries, " ")
	if textutil.WordCount(combined) <= opts.MaxWords {
		return combined, nil
	}
	return s.call(ctx, "summarize", combined, opts)
}

// call renders the named prompt template and runs it on the lite tier.
func (s *Summarizer) call(ctx context.Context, key, text string, opts Options) (string, error) {
	template, err := prompts.Get("summarize.json", key)
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Text":     text,
		"MaxWords": strconv.Itoa(opts.MaxWords),
		"MinWords": strconv.Itoa(opts.MinWords),
	})
	return s.client.GenerateText(ctx, prompt, llm.TierLite, nil)
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
