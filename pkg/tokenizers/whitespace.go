package tokenizers

import (
	"strings"
	"unicode"
)

// WhitespaceTokenizer splits on whitespace and detaches leading and trailing
// punctuation into separate tokens, so "sentence." becomes "sentence", ".".
// It stands in for a full linguistic tokenizer and is the default.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (t *WhitespaceTokenizer) Tokenize(text string) []Token {
	var tokens []Token
	for _, field := range strings.Fields(text) {
		tokens = append(tokens, splitPunct(field)...)
	}
	return tokens
}

func splitPunct(word string) []Token {
	runes := []rune(word)

	start := 0
	for start < len(runes) && unicode.IsPunct(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && unicode.IsPunct(runes[end-1]) {
		end--
	}

	// all punctuation: emit each rune on its own
	if start >= end {
		tokens := make([]Token, len(runes))
		for i, r := range runes {
			tokens[i] = Token{Text: string(r)}
		}
		return tokens
	}

	var tokens []Token
	for _, r := range runes[:start] {
		tokens = append(tokens, Token{Text: string(r)})
	}
	tokens = append(tokens, Token{Text: string(runes[start:end])})
	for _, r := range runes[end:] {
		tokens = append(tokens, Token{Text: string(r)})
	}
	return tokens
}

var _ Tokenizer = &WhitespaceTokenizer{}
