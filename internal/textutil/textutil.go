// Package textutil provides plain-text helpers shared by the text
// utilities: whitespace normalization, word counting, sentence splitting,
// and sentence-boundary chunking for long inputs.
package textutil

import "strings"

// sentence terminators recognized by the splitter
const terminators = ".!?"

// NormalizeWhitespace collapses all runs of whitespace into single spaces
// and trims the ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitSentences splits text into sentences. A sentence ends at '.', '!'
// or '?' followed by whitespace or end of input. Trailing text without a
// terminator is returned as a final sentence.
func SplitSentences(text string) []string {
	text = NormalizeWhitespace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(terminators, runes[i]) {
			continue
		}
		// Consume any run of terminators ("...", "?!")
		end := i
		for end+1 < len(runes) && strings.ContainsRune(terminators, runes[end+1]) {
			end++
		}
		atEnd := end+1 >= len(runes)
		if atEnd || runes[end+1] == ' ' {
			sentence := strings.TrimSpace(string(runes[start : end+1]))
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = end + 1
		}
		i = end
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// ChunkBySentences splits text into chunks no longer than maxChars,
// breaking only at sentence boundaries. A single sentence longer than
// maxChars becomes its own chunk.
func ChunkBySentences(text string, maxChars int) []string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, sentence := range sentences {
		if current.Len() > 0 && current.Len()+len(sentence)+1 > maxChars {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

// TrimIncompleteSentence drops a trailing sentence fragment that has no
// terminator. Generated text cut off mid-sentence reads badly; keeping
// only complete sentences matches how the generators present output.
// Text with no terminator at all is returned unchanged.
func TrimIncompleteSentence(text string) string {
	text = NormalizeWhitespace(text)
	if text == "" {
		return ""
	}

	if strings.ContainsRune(terminators, rune(text[len(text)-1])) {
		return text
	}

	last := strings.LastIndexAny(text, terminators)
	if last < 0 {
		return text
	}

	return strings.TrimSpace(text[:last+1])
}

// TruncateWords returns text cut to at most n words.
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}
