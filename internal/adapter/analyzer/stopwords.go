package analyzer

import (
	"strings"
	"sync"
)

// Stopwords is an immutable set of common English words.
type Stopwords struct {
	words map[string]struct{}
}

var (
	englishOnce sync.Once
	english     *Stopwords
)

// EnglishStopwords returns the process-wide English stopword set.
func EnglishStopwords() *Stopwords {
	englishOnce.Do(func() {
		english = newStopwords(englishStopText)
		if english.Len() == 0 {
			panic("analyzer: english stopword table is empty")
		}
	})
	return english
}

func newStopwords(text string) *Stopwords {
	fields := strings.Fields(text)
	m := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		m[w] = struct{}{}
	}
	return &Stopwords{words: m}
}

// IsStopword reports whether the lowercase form of word is a stopword.
func (s *Stopwords) IsStopword(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

func (s *Stopwords) Len() int {
	return len(s.words)
}

// englishStopText is the NLTK English stopword corpus.
const englishStopText = `
i me my myself we our ours ourselves you you're you've you'll you'd
your yours yourself yourselves he him his himself she she's her hers
herself it it's its itself they them their theirs themselves what which
who whom this that that'll these those am is are was were be been being
have has had having do does did doing a an the and but if or because as
until while of at by for with about against between into through during
before after above below to from up down in out on off over under again
further then once here there when where why how all any both each few
more most other some such no nor not only own same so than too very
s t can will just don don't should should've now d ll m o re ve y ain
aren aren't couldn couldn't didn didn't doesn doesn't hadn hadn't hasn
hasn't haven haven't isn isn't ma mightn mightn't mustn mustn't needn
needn't shan shan't shouldn shouldn't wasn wasn't weren weren't won
won't wouldn wouldn't
`
