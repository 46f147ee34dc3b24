package names

import (
	"strings"

	"github.com/Conceptual-Machines/ikovsky-api/pkg/embedded"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Adjectives loads the embedded adjective list
func (l *Loader) Adjectives() []string {
	return splitWords(embedded.AdjectivesTxt)
}

// Adverbs loads the embedded adverb list
func (l *Loader) Adverbs() []string {
	return splitWords(embedded.AdverbsTxt)
}

// Nouns loads the embedded noun list
func (l *Loader) Nouns() []string {
	return splitWords(embedded.NounsTxt)
}

func splitWords(data []byte) []string {
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}
