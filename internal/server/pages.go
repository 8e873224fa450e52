package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/textsmith/internal/bullets"
	"github.com/jonathan/textsmith/internal/fetch"
	"github.com/jonathan/textsmith/internal/story"
	"github.com/jonathan/textsmith/internal/summarize"
)

// pageData feeds the index template: the form state, suggestion lists,
// and whichever result section applies.
type pageData struct {
	Operation string
	Error     string

	// echoed form values
	Text      string
	URL       string
	MaxWords  string
	MinWords  string
	Genre     string
	Character string
	Setting   string
	Conflict  string
	Prompt    string
	Skills    string
	Context   string
	Count     string

	Genres     []string
	Industries []bullets.IndustrySkills

	Summary     *summarize.Result
	Story       string
	StoryPrompt string
	Bullets     *bullets.Result
}

func newPageData() pageData {
	return pageData{
		Operation:  "summarize",
		Genres:     story.Genres(),
		Industries: bullets.SkillSuggestions(),
	}
}

// handleHome renders the form page.
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, newPageData())
}

// handleGenerate dispatches the form submission on the operation field
// and re-renders the page with the result or a failure message.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		data := newPageData()
		data.Error = "Invalid form submission: " + err.Error()
		s.renderPage(w, http.StatusBadRequest, data)
		return
	}

	data := newPageData()
	data.Operation = r.PostFormValue("operation")
	data.Text = r.PostFormValue("text")
	data.URL = r.PostFormValue("url")
	data.MaxWords = r.PostFormValue("max_words")
	data.MinWords = r.PostFormValue("min_words")
	data.Genre = r.PostFormValue("genre")
	data.Character = r.PostFormValue("character")
	data.Setting = r.PostFormValue("setting")
	data.Conflict = r.PostFormValue("conflict")
	data.Prompt = r.PostFormValue("prompt")
	data.Skills = r.PostFormValue("skills")
	data.Context = r.PostFormValue("context")
	data.Count = r.PostFormValue("count")

	var err error
	switch data.Operation {
	case "summarize":
		err = s.generateSummary(r, &data)
	case "story":
		err = s.generateStory(r, &data)
	case "bullets":
		err = s.generateBullets(r, &data)
	default:
		err = &ErrUnknownOperation{Operation: data.Operation}
	}
	if err != nil {
		status := HTTPStatus(err)
		log.Printf("form %s failed (%d): %v", data.Operation, status, err)
		data.Error = err.Error()
		s.renderPage(w, status, data)
		return
	}

	s.renderPage(w, http.StatusOK, data)
}

func (s *Server) generateSummary(r *http.Request, data *pageData) error {
	text := data.Text
	if data.URL != "" {
		article, err := fetch.Article(r.Context(), data.URL, nil)
		if err != nil {
			return err
		}
		text = article
	}

	result, err := s.summarizer.Summarize(r.Context(), text, summarize.Options{
		MaxWords: formInt(data.MaxWords),
		MinWords: formInt(data.MinWords),
	})
	if err != nil {
		return err
	}
	data.Summary = result
	return nil
}

func (s *Server) generateStory(r *http.Request, data *pageData) error {
	prompt := data.Prompt
	if prompt == "" {
		if data.Character == "" || data.Setting == "" || data.Conflict == "" {
			return &ErrValidation{
				Field:   "prompt",
				Message: "provide a prompt or fill in character, setting, and conflict",
			}
		}
		prompt = story.BuildPrompt(data.Genre, data.Character, data.Setting, data.Conflict)
	}

	narrative, err := s.storyGen.Generate(r.Context(), prompt, story.Options{
		MaxWords: formInt(data.MaxWords),
	})
	if err != nil {
		return err
	}
	data.StoryPrompt = prompt
	data.Story = narrative
	return nil
}

func (s *Server) generateBullets(r *http.Request, data *pageData) error {
	result, err := s.bulletGen.Generate(r.Context(), bullets.ParseSkills(data.Skills), data.Context, bullets.Options{
		PerSkill: formInt(data.Count),
	})
	if err != nil {
		return err
	}
	data.Bullets = result
	return nil
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("failed to render page: %v", err)
	}
}

// formInt parses an optional numeric field; empty or malformed values
// fall through to the module defaults.
func formInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
