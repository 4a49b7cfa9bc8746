package dictionary

import (
	_ "embed"
	"sync"
)

//go:embed data/words.txt
var defaultWords []byte

//go:embed data/bigrams.txt
var defaultBigrams []byte

// Default returns the built-in Hindi word list with its bigram table.
var Default = sync.OnceValue(func() *Dictionary {
	words, err := ParseWords(defaultWords)
	if err != nil {
		panic("dictionary: embedded word list: " + err.Error())
	}
	pairs, err := ParsePairs(defaultBigrams)
	if err != nil {
		panic("dictionary: embedded bigram list: " + err.Error())
	}
	return New(words).WithPairs(NewPairFrequency(pairs))
})
