package story

import "fmt"

// genreTemplates maps a genre to a structured prompt opener built from a
// character, setting, and conflict.
var genreTemplates = map[string]string{
	"adventure": "In a %[2]s, %[1]s embarks on an epic journey to %[3]s. ",
	"mystery":   "When %[1]s discovers %[3]s in %[2]s, they must solve the mystery before it's too late. ",
	"romance":   "Amidst the %[2]s, %[1]s finds themselves caught in a whirlwind romance while dealing with %[3]s. ",
	"scifi":     "In the year 2157, %[1]s navigates through %[2]s to prevent %[3]s from destroying humanity. ",
	"fantasy":   "In the mystical realm of %[2]s, %[1]s must harness ancient powers to overcome %[3]s. ",
	"horror":    "Deep within %[2]s, %[1]s encounters %[3]s that threatens to consume their very soul. ",
}

// Genres lists the supported genres for guided prompt building.
func Genres() []string {
	return []string{"adventure", "mystery", "romance", "scifi", "fantasy", "horror"}
}

// BuildPrompt assembles a story prompt from guided inputs. Unknown
// genres fall back to a generic opener.
func BuildPrompt(genre, character, setting, conflict string) string {
	if template, ok := genreTemplates[genre]; ok {
		return fmt.Sprintf(template, character, setting, conflict)
	}
	return fmt.Sprintf("%s finds themselves in %s facing %s. ", character, setting, conflict)
}
