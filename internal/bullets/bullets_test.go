package bullets

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/textsmith/internal/llm"
	"github.com/jonathan/textsmith/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	response string
	err      error
	prompts  []string
}

func (m *mockClient) GenerateText(_ context.Context, prompt string, _ llm.ModelTier, _ *llm.GenOptions) (string, error) {
	return m.response, m.err
}

func (m *mockClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func (m *mockClient) GetModel(llm.ModelTier) string { return "mock" }
func (m *mockClient) Close() error                  { return nil }

func TestGenerate_Basic(t *testing.T) {
	client := &mockClient{response: `{"bullets": ["Built REST APIs serving 1M requests daily", "Reduced deploy time by 40%.", "Mentored two junior engineers."]}`}
	g := New(client)

	result, err := g.Generate(context.Background(), []string{"API development"}, "fintech startup", Options{})
	require.NoError(t, err)

	require.Len(t, result.Skills, 1)
	sb := result.Skills[0]
	assert.Equal(t, "API development", sb.Skill)
	require.Len(t, sb.Bullets, 3)
	// First bullet had no terminator: a period is appended
	assert.Equal(t, "Built REST APIs serving 1M requests daily.", sb.Bullets[0])

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "API development")
	assert.Contains(t, client.prompts[0], "fintech startup")
	assert.Contains(t, client.prompts[0], "3")
}

func TestGenerate_MultipleSkillsPreserveOrder(t *testing.T) {
	client := &mockClient{response: `{"bullets": ["Did a thing."]}`}
	g := New(client)

	result, err := g.Generate(context.Background(), []string{"Go", " SQL ", ""}, "backend team", Options{})
	require.NoError(t, err)

	require.Len(t, result.Skills, 2)
	assert.Equal(t, "Go", result.Skills[0].Skill)
	assert.Equal(t, "SQL", result.Skills[1].Skill)
	for _, sb := range result.Skills {
		assert.GreaterOrEqual(t, len(sb.Bullets), 1)
	}
}

func TestGenerate_NoSkills(t *testing.T) {
	g := New(&mockClient{})

	_, err := g.Generate(context.Background(), []string{" ", ""}, "context", Options{})
	assert.ErrorIs(t, err, ErrNoSkills)
}

func TestGenerate_EmptyContext(t *testing.T) {
	g := New(&mockClient{})

	_, err := g.Generate(context.Background(), []string{"Go"}, "  ", Options{})
	assert.ErrorIs(t, err, ErrEmptyContext)
}

func TestGenerate_SchemaViolation(t *testing.T) {
	client := &mockClient{response: `{"bullets": []}`}
	g := New(client)

	_, err := g.Generate(context.Background(), []string{"Go"}, "backend team", Options{})
	require.Error(t, err)

	var vErr *schemas.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestGenerate_ModelError(t *testing.T) {
	client := &mockClient{err: errors.New("rate limited")}
	g := New(client)

	_, err := g.Generate(context.Background(), []string{"Go"}, "backend team", Options{})
	assert.ErrorContains(t, err, "rate limited")
}

func TestGenerate_CapsAtRequestedCount(t *testing.T) {
	client := &mockClient{response: `{"bullets": ["One.", "Two.", "Three.", "Four."]}`}
	g := New(client)

	result, err := g.Generate(context.Background(), []string{"Go"}, "backend team", Options{PerSkill: 2})
	require.NoError(t, err)

	assert.Len(t, result.Skills[0].Bullets, 2)
}

func TestCleanBullet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- Led the migration", "Led the migration."},
		{"  Shipped   v2 on time!  ", "Shipped v2 on time!"},
		{"• Cut costs by 20%", "Cut costs by 20%."},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanBullet(tt.in))
	}
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Team leadership"}, ParseSkills("Go, SQL ,, Team  leadership"))
	assert.Empty(t, ParseSkills("  ,  "))
}

func TestSkillSuggestions(t *testing.T) {
	suggestions := SkillSuggestions()
	require.NotEmpty(t, suggestions)
	for _, is := range suggestions {
		assert.NotEmpty(t, is.Industry)
		assert.NotEmpty(t, is.Skills)
	}
}
