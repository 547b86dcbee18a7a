package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits text into word and punctuation tokens, keeping their
// original case and order.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into tokens.
//
// Words are runs of letters and digits, allowing inner '-', '_' and '.'
// between alphanumerics ("state-of-the-art", "3.14", "U.S") and ',' between
// digits ("1,000"). Every other
// non-space rune becomes its own token, except that runs of one
// punctuation rune ("...", "--") stay together. English clitics
// ('s, 'll, n't, ...) are split off the word they follow.
func (t *Tokenizer) Tokenize(text string) []string {
	runes := []rune(foldQuotes(norm.NFC.String(text)))
	tokens := make([]string, 0, len(runes)/4)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			end := scanWord(runes, i)
			tokens = append(tokens, splitClitics(string(runes[i:end]))...)
			i = end
		default:
			end := i + 1
			for end < len(runes) && runes[end] == r {
				end++
			}
			tokens = append(tokens, string(runes[i:end]))
			i = end
		}
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// scanWord returns the end index of the word starting at start.
func scanWord(runes []rune, start int) int {
	i := start
	for i < len(runes) {
		r := runes[i]
		if isWordRune(r) {
			i++
			continue
		}
		joiner := r == '-' || r == '_' || r == '.' || r == '\''
		if joiner && i+1 < len(runes) && isWordRune(runes[i+1]) && isWordRune(runes[i-1]) {
			i++
			continue
		}
		// digit grouping: 1,000
		if r == ',' && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) && unicode.IsDigit(runes[i-1]) {
			i++
			continue
		}
		break
	}
	return i
}

var clitics = []string{"'s", "'m", "'d", "'re", "'ve", "'ll"}

// splitClitics separates a trailing contraction from word.
func splitClitics(word string) []string {
	lower := strings.ToLower(word)
	if strings.HasSuffix(lower, "n't") && len(word) > 3 {
		cut := len(word) - 3
		return []string{word[:cut], word[cut:]}
	}
	for _, c := range clitics {
		if strings.HasSuffix(lower, c) && len(word) > len(c) {
			cut := len(word) - len(c)
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

var quoteFolder = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", "\"", "”", "\"",
)

func foldQuotes(s string) string {
	return quoteFolder.Replace(s)
}
