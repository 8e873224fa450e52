// Package server provides the HTTP interface for the text utilities:
// an HTML form front end plus a JSON API.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/textsmith/internal/bullets"
	"github.com/jonathan/textsmith/internal/fetch"
	"github.com/jonathan/textsmith/internal/llm"
	"github.com/jonathan/textsmith/internal/schemas"
	"github.com/jonathan/textsmith/internal/story"
	"github.com/jonathan/textsmith/internal/summarize"
)

// ErrUnknownOperation indicates an unsupported operation selector value.
type ErrUnknownOperation struct {
	Operation string
}

func (e *ErrUnknownOperation) Error() string {
	return fmt.Sprintf("unknown operation: %q", e.Operation)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unknownOp *ErrUnknownOperation
	var validation *ErrValidation
	var apiErr *llm.APICallError
	var fetchErr *fetch.Error
	var schemaErr *schemas.ValidationError

	switch {
	case errors.As(err, &unknownOp), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, summarize.ErrEmptyInput),
		errors.Is(err, story.ErrEmptyPrompt),
		errors.Is(err, bullets.ErrNoSkills),
		errors.Is(err, bullets.ErrEmptyContext):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &apiErr), errors.As(err, &schemaErr):
		// The model call failed or returned garbage
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
