package corrector

import (
	"regexp"
	"strings"
)

var punctRe = regexp.MustCompile(`[\p{P}\p{S}]+`)

// Tokenize pads every run of punctuation or symbols with spaces and splits
// on whitespace. Tokens keep their original form.
func Tokenize(text string) []string {
	return strings.Fields(punctRe.ReplaceAllString(text, " $0 "))
}
