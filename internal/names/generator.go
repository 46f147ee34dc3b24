// Package names builds short song titles from embedded word lists.
package names

import (
	"errors"
	"strings"

	"github.com/Conceptual-Machines/ikovsky-api/internal/composer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLength is the longest title the player UI can display
const MaxLength = 30

const maxAttempts = 100

// Fallback is returned when no template fits within MaxLength
const Fallback = "Untitled"

type partOfSpeech int

const (
	adjective partOfSpeech = iota
	adverb
	noun
)

var templates = [...][]partOfSpeech{
	{adjective, adjective, noun},
	{adjective, adverb, noun},
	{adverb, adjective, noun},
	{adjective, noun},
	{adverb, noun},
	{adverb},
	{adjective},
	{noun},
}

// Generator picks words uniformly from each list. It is safe for
// concurrent use.
type Generator struct {
	words [3][]string
}

// New creates a generator over the embedded word lists. It panics if a
// list is empty, which only a broken build can cause.
func New() *Generator {
	l := NewLoader()
	return must(NewGenerator(l.Adjectives(), l.Adverbs(), l.Nouns()))
}

func must(g *Generator, err error) *Generator {
	if err != nil {
		panic(err)
	}
	return g
}

// NewGenerator creates a generator over custom word lists
func NewGenerator(adjectives, adverbs, nouns []string) (*Generator, error) {
	if len(adjectives) == 0 || len(adverbs) == 0 || len(nouns) == 0 {
		return nil, errors.New("names: every word list needs at least one word")
	}
	return &Generator{words: [3][]string{adjectives, adverbs, nouns}}, nil
}

// Generate draws titles until one fits MaxLength
func (g *Generator) Generate(rng composer.Rand) string {
	for range maxAttempts {
		if name := g.compose(rng); len(name) <= MaxLength {
			return name
		}
	}
	return Fallback
}

func (g *Generator) compose(rng composer.Rand) string {
	tmpl := templates[rng.IntN(len(templates))]
	parts := make([]string, len(tmpl))
	for i, pos := range tmpl {
		list := g.words[pos]
		parts[i] = list[rng.IntN(len(list))]
	}
	// a Caser holds state, so each title gets its own
	return cases.Title(language.English).String(strings.Join(parts, " "))
}
