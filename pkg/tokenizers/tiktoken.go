package tokenizers

import (
	"github.com/pkoukk/tiktoken-go"
)

const DefaultTiktokenEncoding = "cl100k_base"

// TiktokenTokenizer produces BPE subword tokens. Each token's text is the
// decoded form of one BPE id, so the sequence concatenates back to the
// original string.
type TiktokenTokenizer struct {
	tkm *tiktoken.Tiktoken
}

func NewTiktokenTokenizer(encoding string) (*TiktokenTokenizer, error) {
	if encoding == "" {
		encoding = DefaultTiktokenEncoding
	}
	tkm, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return &TiktokenTokenizer{tkm: tkm}, nil
}

func (t *TiktokenTokenizer) Tokenize(text string) []Token {
	ids := t.tkm.Encode(text, nil, nil)
	tokens := make([]Token, len(ids))
	for i, id := range ids {
		tokens[i] = Token{Text: t.tkm.Decode([]int{id})}
	}
	return tokens
}

var _ Tokenizer = &TiktokenTokenizer{}
