package analyzer

import (
	"reflect"
	"testing"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer()

	tests := []struct {
		input    string
		expected []string
	}{
		{"the quick brown fox", []string{"the", "quick", "brown", "fox"}},
		{"fox.", []string{"fox", "."}},
		{"Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"wait...", []string{"wait", "..."}},
		{"don't stop", []string{"do", "n't", "stop"}},
		{"John's car", []string{"John", "'s", "car"}},
		{"we'll see", []string{"we", "'ll", "see"}},
		{"state-of-the-art", []string{"state-of-the-art"}},
		{"pi is 3.14", []string{"pi", "is", "3.14"}},
		{"It's 1,000 dollars.", []string{"It", "'s", "1,000", "dollars", "."}},
		{"1, 2,3", []string{"1", ",", "2,3"}},
		{"a,1", []string{"a", ",", "1"}},
		{"snake_case_name", []string{"snake_case_name"}},
		{"func(x, y)", []string{"func", "(", "x", ",", "y", ")"}},
		{"  \t\n ", []string{}},
		{"", []string{}},
		{"“quoted”", []string{"\"", "quoted", "\""}},
		{"it’s", []string{"it", "'s"}},
		{"café au lait", []string{"café", "au", "lait"}},
	}

	for _, tt := range tests {
		got := tok.Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTokenizer_Deterministic(t *testing.T) {
	tok := NewTokenizer()
	input := "Can't we, perhaps, tokenize this -- twice?"

	first := tok.Tokenize(input)
	for i := 0; i < 5; i++ {
		if got := tok.Tokenize(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}

func TestSplitClitics(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"can't", []string{"ca", "n't"}},
		{"ISN'T", []string{"IS", "N'T"}},
		{"they'd", []string{"they", "'d"}},
		{"you're", []string{"you", "'re"}},
		{"rock'n'roll", []string{"rock'n'roll"}},
		{"plain", []string{"plain"}},
	}

	for _, tt := range tests {
		if got := splitClitics(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("splitClitics(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStopwords(t *testing.T) {
	sw := EnglishStopwords()

	for _, w := range []string{"the", "The", "IS", "and", "don't", "of"} {
		if !sw.IsStopword(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"fox", "Data", "n't", "."} {
		if sw.IsStopword(w) {
			t.Errorf("expected %q not to be a stopword", w)
		}
	}
	if sw.Len() != 179 {
		t.Errorf("expected 179 stopwords, got %d", sw.Len())
	}
	if EnglishStopwords() != sw {
		t.Error("expected the stopword set to be shared")
	}
}
