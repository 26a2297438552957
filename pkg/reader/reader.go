// Package reader converts JSON-lines ULF dataset files into training
// instances: one record per line, one instance per record.
package reader

import (
	"fmt"

	"github.com/ulfnlp/ulfdata/config"
	"github.com/ulfnlp/ulfdata/internal"
	"github.com/ulfnlp/ulfdata/pkg/indexers"
	"github.com/ulfnlp/ulfdata/pkg/tokenizers"
)

var log = internal.GetLogger()

// MismatchPolicy says what to do when a record's label sequence length
// differs from its token count.
type MismatchPolicy string

const (
	// MismatchStrict surfaces a LengthMismatchError.
	MismatchStrict MismatchPolicy = "strict"
	// MismatchTruncate truncates or pads the labels to the token count;
	// padded positions take the token's own text.
	MismatchTruncate MismatchPolicy = "truncate"
)

// ErrorPolicy says what iteration does with a record that fails to parse or
// convert.
type ErrorPolicy string

const (
	ErrorAbort ErrorPolicy = "abort"
	ErrorSkip  ErrorPolicy = "skip"
)

// Reader produces instances from dataset files. It holds no per-file state;
// every Read opens the source fresh, so re-reading yields the same sequence.
type Reader struct {
	conv          *Converter
	onRecordError ErrorPolicy
}

func NewReader(conv *Converter, onRecordError ErrorPolicy) *Reader {
	if conv == nil {
		conv = NewConverter()
	}
	if onRecordError == "" {
		onRecordError = ErrorAbort
	}
	return &Reader{conv: conv, onRecordError: onRecordError}
}

// NewReaderFromConfig wires tokenizer, indexers and policies from the
// application config.
func NewReaderFromConfig(cfg *config.Config) (*Reader, error) {
	tokenizer, err := tokenizers.New(cfg.Reader.Tokenizer, cfg.Reader.TiktokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("configuring tokenizer: %w", err)
	}

	conv := NewConverter(
		WithTokenizer(tokenizer),
		WithIndexers(indexers.Default()),
		WithMultisent(cfg.Reader.Multisent),
		WithMismatchPolicy(MismatchPolicy(cfg.Reader.OnLengthMismatch)),
	)
	return NewReader(conv, ErrorPolicy(cfg.Reader.OnRecordError)), nil
}

// Converter returns the record converter this reader uses.
func (r *Reader) Converter() *Converter {
	return r.conv
}
