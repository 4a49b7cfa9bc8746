package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// LoadFile reads a frequency list with one "word count" entry per line.
// Blank lines, lines starting with '#' and malformed lines are skipped.
func LoadFile(path string) (*Dictionary, error) {
	var counts map[string]int
	err := withMapped(path, func(data []byte) error {
		var err error
		counts, err = ParseWords(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("load dictionary %s: %w", path, ErrEmptyDictionary)
	}
	return New(counts), nil
}

// LoadBigramFile reads a pair list with one "first second count" entry per line.
func LoadBigramFile(path string) (*PairFrequency, error) {
	var counts map[Pair]int
	err := withMapped(path, func(data []byte) error {
		var err error
		counts, err = ParsePairs(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load bigrams %s: %w", path, err)
	}
	return NewPairFrequency(counts), nil
}

// withMapped maps path read-only for the duration of fn.
func withMapped(path string, fn func(data []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	if st.Size() == 0 {
		return fn(nil)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	defer m.Unmap()
	return fn(m)
}

// ParseWords parses "word count" lines. Counts may be written as floats;
// they are truncated.
func ParseWords(data []byte) (map[string]int, error) {
	counts := make(map[string]int)
	err := scanLines(data, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		if c, ok := parseCount(fields[1]); ok {
			counts[fields[0]] = addCount(counts[fields[0]], c)
		}
	})
	return counts, err
}

// ParsePairs parses "first second count" lines.
func ParsePairs(data []byte) (map[Pair]int, error) {
	counts := make(map[Pair]int)
	err := scanLines(data, func(fields []string) {
		if len(fields) < 3 {
			return
		}
		if c, ok := parseCount(fields[2]); ok {
			k := Pair{First: fields[0], Second: fields[1]}
			counts[k] = addCount(counts[k], c)
		}
	})
	return counts, err
}

func scanLines(data []byte, fn func(fields []string)) error {
	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(strings.Fields(line))
	}
	return s.Err()
}

// parseCount accepts integer or finite float counts, clamped to the int range.
func parseCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt, true
	case f <= math.MinInt:
		return math.MinInt, true
	}
	return int(f), true
}

// addCount is a + b saturated at the int range.
func addCount(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
