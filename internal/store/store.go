package store

import (
	"database/sql"
	"fmt"
	"strings"

	"hindispell/internal/dictionary"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// UpsertWord sets the frequency of word, inserting it when missing.
func UpsertWord(db DBExecutor, word string, freq int) error {
	w := strings.TrimSpace(word)
	if w == "" {
		return fmt.Errorf("word must be non-empty")
	}
	_, err := db.Exec(
		`INSERT INTO words (word, freq) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET freq = excluded.freq`,
		w, max(freq, 0),
	)
	if err != nil {
		return fmt.Errorf("upsert word: %w", err)
	}
	return nil
}

// UpsertPair sets the frequency of an ordered word pair.
func UpsertPair(db DBExecutor, p dictionary.Pair, freq int) error {
	if p.First == "" || p.Second == "" {
		return fmt.Errorf("pair words must be non-empty")
	}
	_, err := db.Exec(
		`INSERT INTO bigrams (first, second, freq) VALUES (?, ?, ?)
		 ON CONFLICT(first, second) DO UPDATE SET freq = excluded.freq`,
		p.First, p.Second, max(freq, 0),
	)
	if err != nil {
		return fmt.Errorf("upsert bigram: %w", err)
	}
	return nil
}

// SaveDictionary replaces the stored words and bigrams with d in one transaction.
func SaveDictionary(db *sql.DB, d *dictionary.Dictionary) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM bigrams`); err != nil {
		return fmt.Errorf("clear bigrams: %w", err)
	}
	for _, w := range d.Words() {
		freq, _ := d.Freq(w)
		if err := UpsertWord(tx, w, freq); err != nil {
			return err
		}
	}
	pairs := d.Pairs()
	for _, p := range pairs.Pairs() {
		if err := UpsertPair(tx, p, pairs.Count(p.First, p.Second)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadDictionary reads every stored word and bigram.
func LoadDictionary(db DBExecutor) (*dictionary.Dictionary, error) {
	counts, err := loadWords(db)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, dictionary.ErrEmptyDictionary
	}
	pairs, err := loadPairs(db)
	if err != nil {
		return nil, err
	}
	return dictionary.New(counts).WithPairs(dictionary.NewPairFrequency(pairs)), nil
}

func loadWords(db DBExecutor) (map[string]int, error) {
	rows, err := db.Query(`SELECT word, freq FROM words`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var w string
		var f int
		if err := rows.Scan(&w, &f); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		counts[w] = f
	}
	return counts, rows.Err()
}

func loadPairs(db DBExecutor) (map[dictionary.Pair]int, error) {
	rows, err := db.Query(`SELECT first, second, freq FROM bigrams`)
	if err != nil {
		return nil, fmt.Errorf("query bigrams: %w", err)
	}
	defer rows.Close()

	counts := make(map[dictionary.Pair]int)
	for rows.Next() {
		var p dictionary.Pair
		var f int
		if err := rows.Scan(&p.First, &p.Second, &f); err != nil {
			return nil, fmt.Errorf("scan bigram: %w", err)
		}
		counts[p] = f
	}
	return counts, rows.Err()
}
