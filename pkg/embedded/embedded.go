package embedded

import (
	_ "embed"
)

// Word lists for song names, one word per line
//
//go:embed data/words/adjectives.txt
var AdjectivesTxt []byte

//go:embed data/words/adverbs.txt
var AdverbsTxt []byte

//go:embed data/words/nouns.txt
var NounsTxt []byte
