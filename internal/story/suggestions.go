package story

// Suggestion is a prefilled set of guided prompt inputs.
type Suggestion struct {
	Genre     string `json:"genre"`
	Character string `json:"character"`
	Setting   string `json:"setting"`
	Conflict  string `json:"conflict"`
}

// Suggestions returns starter ideas for guided story creation.
func Suggestions() []Suggestion {
	return []Suggestion{
		{Genre: "adventure", Character: "a young explorer", Setting: "ancient ruins", Conflict: "find a lost treasure"},
		{Genre: "mystery", Character: "a detective", Setting: "a small coastal town", Conflict: "a series of unexplained disappearances"},
		{Genre: "scifi", Character: "a space pilot", Setting: "distant galaxy", Conflict: "save Earth from an alien invasion"},
		{Genre: "fantasy", Character: "a young wizard", Setting: "magical academy", Conflict: "master forbidden spells"},
	}
}
