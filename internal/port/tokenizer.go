package port

type Tokenizer interface {
	Tokenize(text string) []string
}

type KeywordExtractor interface {
	Extract(text string) []string
}
