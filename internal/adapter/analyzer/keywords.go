package analyzer

import "promptmark/internal/port"

// MaxKeywords is the number of keywords returned by an Extractor.
const MaxKeywords = 3

// Extractor picks the first non-stopword tokens of a text as keywords.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	tokenizer port.Tokenizer
	stopwords *Stopwords
}

// NewExtractor creates an Extractor over the English stopword set.
func NewExtractor() *Extractor {
	return &Extractor{
		tokenizer: NewTokenizer(),
		stopwords: EnglishStopwords(),
	}
}

// Extract returns up to MaxKeywords tokens of text whose lowercase form is
// not a stopword, in their original order. The result is never nil.
func (e *Extractor) Extract(text string) []string {
	keywords := make([]string, 0, MaxKeywords)
	for _, tok := range e.tokenizer.Tokenize(text) {
		if e.stopwords.IsStopword(tok) {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

var defaultExtractor = NewExtractor()

// ExtractKeywords extracts keywords from prompt with the default Extractor.
func ExtractKeywords(prompt string) []string {
	return defaultExtractor.Extract(prompt)
}
