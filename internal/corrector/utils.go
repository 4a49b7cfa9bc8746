package corrector

import "hindispell/internal/script"

// Levenshtein returns the unit-cost edit distance between a and b, measured
// in runes, using a single rolling row of len(b)+1 cells.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= la; i++ {
		diag := row[0] // row[i-1][j-1]
		row[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			above := row[j]
			row[j] = min(above+1, row[j-1]+1, diag+cost)
			diag = above
		}
	}
	return row[lb]
}

// SingleEditNeighbors returns every string one edit away from word:
// one deletion, one adjacent transposition, one substitution by a different
// alphabet symbol, or one insertion of an alphabet symbol at any of the
// len+1 positions. The set may contain word itself (swapping equal runes).
func SingleEditNeighbors(word string) map[string]struct{} {
	rs := []rune(word)
	n := len(rs)
	alpha := script.Alphabet
	out := make(map[string]struct{}, n*(2*len(alpha)+2)+len(alpha))

	buf := make([]rune, 0, n+1)
	add := func(parts ...[]rune) {
		buf = buf[:0]
		for _, p := range parts {
			buf = append(buf, p...)
		}
		out[string(buf)] = struct{}{}
	}

	for i := 0; i < n; i++ {
		add(rs[:i], rs[i+1:])
	}
	for i := 0; i+1 < n; i++ {
		add(rs[:i], []rune{rs[i+1], rs[i]}, rs[i+2:])
	}
	for i := 0; i < n; i++ {
		for _, c := range alpha {
			if c == rs[i] {
				continue
			}
			add(rs[:i], []rune{c}, rs[i+1:])
		}
	}
	for i := 0; i <= n; i++ {
		for _, c := range alpha {
			add(rs[:i], []rune{c}, rs[i:])
		}
	}
	return out
}
