package config

import (
	"fmt"

	"hindispell/internal/dictionary"
	"hindispell/internal/store"
)

// LoadDictionary picks the word list: DictionaryPath, then DictionarySQLite,
// then the embedded default. A BigramPath replaces the bigram table of
// whichever source won. The returned string names the source for logging.
func (c *Config) LoadDictionary() (*dictionary.Dictionary, string, error) {
	var (
		d      *dictionary.Dictionary
		source string
		err    error
	)
	switch {
	case c.DictionaryPath != "":
		source = c.DictionaryPath
		d, err = dictionary.LoadFile(c.DictionaryPath)
	case c.DictionarySQLite != "":
		source = "sqlite:" + c.DictionarySQLite
		d, err = loadSQLite(c.DictionarySQLite)
	default:
		source = "embedded"
		d = dictionary.Default()
	}
	if err != nil {
		return nil, source, err
	}

	if c.BigramPath != "" {
		pairs, err := dictionary.LoadBigramFile(c.BigramPath)
		if err != nil {
			return nil, source, err
		}
		d = d.WithPairs(pairs)
	}
	return d, source, nil
}

func loadSQLite(path string) (*dictionary.Dictionary, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	d, err := store.LoadDictionary(db)
	if err != nil {
		return nil, fmt.Errorf("load dictionary from %s: %w", path, err)
	}
	return d, nil
}
