package tokenizers

import "fmt"

// Token is a single unit of tokenized text.
type Token struct {
	Text string
}

// Tokenizer splits a string into an ordered token sequence.
type Tokenizer interface {
	Tokenize(text string) []Token
}

const (
	TokenizerTypeWhitespace = "whitespace"
	TokenizerTypeTiktoken   = "tiktoken"
)

// New returns the tokenizer named by tokenizerType. encoding is only used by
// the tiktoken tokenizer.
func New(tokenizerType, encoding string) (Tokenizer, error) {
	switch tokenizerType {
	case "", TokenizerTypeWhitespace:
		return NewWhitespaceTokenizer(), nil
	case TokenizerTypeTiktoken:
		return NewTiktokenTokenizer(encoding)
	default:
		return nil, fmt.Errorf("unknown tokenizer type %q", tokenizerType)
	}
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// FromWords wraps a pre-tokenized word sequence as tokens.
func FromWords(words []string) []Token {
	out := make([]Token, len(words))
	for i, w := range words {
		out[i] = Token{Text: w}
	}
	return out
}
