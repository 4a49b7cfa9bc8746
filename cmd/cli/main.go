// Command cli corrects stdin (or a file) and prints the JSON result.
//
// Usage:
//
//	echo "मैं स्कूल जता हूँ" | cli
//	cli -f text.txt -lines
//	cli -candidates जता -n 3
//	cli -dict words.txt -export-sqlite dict.db
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"hindispell/internal/config"
	"hindispell/internal/corrector"
	"hindispell/internal/dictionary"
	"hindispell/internal/store"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	dictPath := flag.String("dict", "", "word frequency file (default: DICTIONARY_PATH or embedded list)")
	bigrams := flag.String("bigrams", "", "bigram frequency file")
	sqlitePath := flag.String("sqlite", "", "load the dictionary from this SQLite store")
	tuning := flag.String("tuning", "", "YAML tuning file")
	word := flag.String("candidates", "", "print ranked candidates for one word and exit")
	n := flag.Int("n", 0, "number of candidates (0 = configured default)")
	lines := flag.Bool("lines", false, "correct every input line separately")
	exportPath := flag.String("export-sqlite", "", "write the loaded dictionary to this SQLite file and exit")
	timeout := flag.Duration("t", 30*time.Second, "overall timeout")
	flag.Parse()

	cfg, err := config.Load(".env")
	must(err)
	if *dictPath != "" {
		cfg.DictionaryPath = *dictPath
	}
	if *bigrams != "" {
		cfg.BigramPath = *bigrams
	}
	if *sqlitePath != "" {
		cfg.DictionarySQLite = *sqlitePath
	}
	if *tuning != "" {
		cfg.TuningFile = *tuning
	}

	dict, _, err := cfg.LoadDictionary()
	must(err)

	if *exportPath != "" {
		must(exportSQLite(*exportPath, dict))
		fmt.Fprintf(os.Stderr, "wrote %d words and %d bigrams to %s\n", dict.Len(), dict.Pairs().Len(), *exportPath)
		return
	}

	opts, err := cfg.EngineOptions()
	must(err)
	sc, err := corrector.NewSpellCorrector(dict, opts...)
	must(err)

	if *word != "" {
		cands := sc.FindCandidates(*word, *n)
		printJSON(corrector.ScaleScores(cands, sc.Options().ScoreScale))
		return
	}

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}

	if !*lines {
		data, err := io.ReadAll(r)
		must(err)
		printJSON(sc.CorrectText(strings.TrimSpace(string(data))))
		return
	}

	var texts []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if t := strings.TrimSpace(s.Text()); t != "" {
			texts = append(texts, t)
		}
	}
	must(s.Err())

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	results, err := sc.CorrectBatch(ctx, texts)
	must(err)
	printJSON(results)
}

// printJSON writes v indented, without HTML escaping.
func printJSON(v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	must(enc.Encode(v))
	os.Stdout.Write(buf.Bytes())
}

// exportSQLite writes dict to the SQLite file at path and closes it, so the
// database is flushed before the process exits.
func exportSQLite(path string, dict *dictionary.Dictionary) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	err = store.SaveDictionary(db, dict)
	return errors.Join(err, db.Close())
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
