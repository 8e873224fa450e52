package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidBullets(t *testing.T) {
	doc := `{"bullets": ["Developed APIs in Go.", "Led a team of five."]}`
	assert.NoError(t, Validate("bullets.json", doc))
}

func TestValidate_EmptyBulletList(t *testing.T) {
	err := Validate("bullets.json", `{"bullets": []}`)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.NotEmpty(t, vErr.Errors)
}

func TestValidate_MissingBulletsField(t *testing.T) {
	err := Validate("bullets.json", `{"items": ["a"]}`)
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestValidate_WrongItemType(t *testing.T) {
	err := Validate("bullets.json", `{"bullets": [1, 2]}`)
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate("bullets.json", `{"bullets": [`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.json", `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "missing.json")
}
