// Package bullets implements the resume bullet generator: given skills
// and a role/industry context, produce professional bullet-point strings.
package bullets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/textsmith/internal/llm"
	"github.com/jonathan/textsmith/internal/prompts"
	"github.com/jonathan/textsmith/internal/schemas"
	"github.com/jonathan/textsmith/internal/textutil"
)

const (
	// DefaultPerSkill is how many bullets to generate per skill.
	DefaultPerSkill = 3
	// maxPerSkill bounds a single request's model usage.
	maxPerSkill = 10
)

var (
	// ErrNoSkills indicates that no usable skill was provided.
	ErrNoSkills = errors.New("at least one skill is required")
	// ErrEmptyContext indicates the industry/company context is missing.
	ErrEmptyContext = errors.New("context is required")
)

// Options tune bullet generation.
type Options struct {
	PerSkill int
}

func (o Options) normalized() Options {
	if o.PerSkill <= 0 {
		o.PerSkill = DefaultPerSkill
	}
	if o.PerSkill > maxPerSkill {
		o.PerSkill = maxPerSkill
	}
	return o
}

// SkillBullets groups the generated bullets for one skill.
type SkillBullets struct {
	Skill   string   `json:"skill"`
	Bullets []string `json:"bullets"`
}

// Result holds generated bullets for all requested skills, in input order.
type Result struct {
	Skills []SkillBullets `json:"skills"`
}

// Generator produces resume bullets through an LLM client.
type Generator struct {
	client llm.Client
}

// New creates a Generator backed by the given client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces Options.PerSkill bullets for each skill, in the
// given context. Every returned skill has at least one bullet.
func (g *Generator) Generate(ctx context.Context, skills []string, contextDesc string, opts Options) (*Result, error) {
	skills = cleanSkills(skills)
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}
	contextDesc = textutil.NormalizeWhitespace(contextDesc)
	if contextDesc == "" {
		return nil, ErrEmptyContext
	}
	opts = opts.normalized()

	result := &Result{Skills: make([]SkillBullets, 0, len(skills))}
	for _, skill := range skills {
		generated, err := g.generateForSkill(ctx, skill, contextDesc, opts.PerSkill)
		if err != nil {
			return nil, fmt.Errorf("failed to generate bullets for skill %q: %w", skill, err)
		}
		result.Skills = append(result.Skills, SkillBullets{Skill: skill, Bullets: generated})
	}

	return result, nil
}

// generateForSkill asks the model for a JSON bullet list, validates it
// against the embedded schema, and cleans each bullet.
func (g *Generator) generateForSkill(ctx context.Context, skill, contextDesc string, count int) ([]string, error) {
	template, err := prompts.Get("bullets.json", "bullets")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Skill":   skill,
		"Context": contextDesc,
		"Count":   strconv.Itoa(count),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate("bullets.json", raw); err != nil {
		return nil, err
	}

	var parsed struct {
		Bullets []string `json:"bullets"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse bullet response: %w", err)
	}

	cleaned := make([]string, 0, count)
	for _, bullet := range parsed.Bullets {
		if b := CleanBullet(bullet); b != "" {
			cleaned = append(cleaned, b)
		}
		if len(cleaned) == count {
			break
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("model returned no usable bullets")
	}

	return cleaned, nil
}

// CleanBullet normalizes a generated bullet: collapses whitespace,
// strips a leading list marker, and ensures a trailing period.
func CleanBullet(bullet string) string {
	bullet = textutil.NormalizeWhitespace(bullet)
	bullet = strings.TrimLeft(bullet, "-•* ")
	if bullet == "" {
		return ""
	}
	if !strings.ContainsAny(bullet[len(bullet)-1:], ".!?") {
		bullet += "."
	}
	return bullet
}

// cleanSkills trims skills and drops empty entries, preserving order.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if s := textutil.NormalizeWhitespace(skill); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseSkills splits a comma-separated skill list into clean entries.
func ParseSkills(input string) []string {
	return cleanSkills(strings.Split(input, ","))
}
