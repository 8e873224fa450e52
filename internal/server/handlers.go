package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/textsmith/internal/bullets"
	"github.com/jonathan/textsmith/internal/fetch"
	"github.com/jonathan/textsmith/internal/story"
	"github.com/jonathan/textsmith/internal/summarize"
	"github.com/jonathan/textsmith/internal/textutil"
)

// SummarizeRequest is the request body for POST /api/summarize.
// Either text or url must be set; url wins when both are present.
type SummarizeRequest struct {
	Text      string `json:"text" validate:"required_without=URL"`
	URL       string `json:"url,omitempty" validate:"omitempty,url"`
	MaxLength int    `json:"max_length,omitempty" validate:"omitempty,min=1"`
	MinLength int    `json:"min_length,omitempty" validate:"omitempty,min=1"`
}

// SummarizeResponse is the response for POST /api/summarize.
type SummarizeResponse struct {
	RequestID string `json:"request_id"`
	Source    string `json:"source,omitempty"`
	summarize.Result
}

// StoryRequest is the request body for POST /api/story. Either a free
// prompt or the full set of guided fields must be provided.
type StoryRequest struct {
	Prompt      string  `json:"prompt,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Character   string  `json:"character,omitempty"`
	Setting     string  `json:"setting,omitempty"`
	Conflict    string  `json:"conflict,omitempty"`
	MaxWords    int     `json:"max_words,omitempty" validate:"omitempty,min=1"`
	Temperature float32 `json:"temperature,omitempty" validate:"omitempty,gt=0,lte=2"`
}

// StoryResponse is the response for POST /api/story.
type StoryResponse struct {
	RequestID string `json:"request_id"`
	Prompt    string `json:"prompt"`
	Story     string `json:"story"`
}

// BulletsRequest is the request body for POST /api/bullets.
type BulletsRequest struct {
	Skills  []string `json:"skills" validate:"required,min=1"`
	Context string   `json:"context" validate:"required"`
	Count   int      `json:"count,omitempty" validate:"omitempty,min=1,max=10"`
}

// BulletsResponse is the response for POST /api/bullets.
type BulletsResponse struct {
	RequestID string                 `json:"request_id"`
	Skills    []bullets.SkillBullets `json:"skills"`
}

// handleSummarize summarizes pasted text or a fetched article.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	requestID := uuid.New().String()

	text := req.Text
	source := ""
	if req.URL != "" {
		article, err := fetch.Article(r.Context(), req.URL, nil)
		if err != nil {
			s.handleError(w, requestID, err)
			return
		}
		text = article
		source = req.URL
	}

	result, err := s.summarizer.Summarize(r.Context(), text, summarize.Options{
		MaxWords: req.MaxLength,
		MinWords: req.MinLength,
	})
	if err != nil {
		s.handleError(w, requestID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SummarizeResponse{
		RequestID: requestID,
		Source:    source,
		Result:    *result,
	})
}

// handleStory generates a narrative from a free or guided prompt.
func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	var req StoryRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	requestID := uuid.New().String()

	prompt := textutil.NormalizeWhitespace(req.Prompt)
	if prompt == "" {
		if req.Character == "" || req.Setting == "" || req.Conflict == "" {
			s.handleError(w, requestID, &ErrValidation{
				Field:   "prompt",
				Message: "either prompt or character, setting, and conflict are required",
			})
			return
		}
		prompt = story.BuildPrompt(req.Genre, req.Character, req.Setting, req.Conflict)
	}

	narrative, err := s.storyGen.Generate(r.Context(), prompt, story.Options{
		MaxWords:    req.MaxWords,
		Temperature: req.Temperature,
	})
	if err != nil {
		s.handleError(w, requestID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, StoryResponse{
		RequestID: requestID,
		Prompt:    prompt,
		Story:     narrative,
	})
}

// handleBullets generates resume bullets per skill.
func (s *Server) handleBullets(w http.ResponseWriter, r *http.Request) {
	var req BulletsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	requestID := uuid.New().String()

	result, err := s.bulletGen.Generate(r.Context(), req.Skills, req.Context, bullets.Options{
		PerSkill: req.Count,
	})
	if err != nil {
		s.handleError(w, requestID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, BulletsResponse{
		RequestID: requestID,
		Skills:    result.Skills,
	})
}

// handleStorySuggestions lists guided story starters.
func (s *Server) handleStorySuggestions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"genres":      story.Genres(),
		"suggestions": story.Suggestions(),
	})
}

// handleSkillSuggestions lists common skills per industry.
func (s *Server) handleSkillSuggestions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"industries": bullets.SkillSuggestions(),
	})
}

// decodeAndValidate decodes the JSON body into req and validates it.
// On failure it writes a 400 response and returns false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		message := "invalid request"
		if errors.As(err, &invalid) && len(invalid) > 0 {
			message = "invalid field: " + invalid[0].Field()
		}
		s.errorResponse(w, http.StatusBadRequest, message)
		return false
	}
	return true
}

// handleError maps a module error to an HTTP status and logs it with
// the request ID for correlation.
func (s *Server) handleError(w http.ResponseWriter, requestID string, err error) {
	status := HTTPStatus(err)
	log.Printf("[request %s] error (%d): %v", requestID, status, err)
	s.errorResponse(w, status, err.Error())
}
