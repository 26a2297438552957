package reader

import (
	"strings"

	"github.com/ulfnlp/ulfdata/pkg/indexers"
	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/tokenizers"
	"github.com/ulfnlp/ulfdata/pkg/ulf"
)

// Converter turns one Record into one Instance. It is a pure function of the
// record plus its injected tokenizer and indexers; converting the same
// record twice yields identical instances.
type Converter struct {
	tokenizer tokenizers.Tokenizer
	indexers  map[string]indexers.TokenIndexer
	multisent string
	mismatch  MismatchPolicy
}

type Option func(*Converter)

func WithTokenizer(t tokenizers.Tokenizer) Option {
	return func(c *Converter) {
		if t != nil {
			c.tokenizer = t
		}
	}
}

func WithIndexers(ixs map[string]indexers.TokenIndexer) Option {
	return func(c *Converter) {
		if ixs != nil {
			c.indexers = ixs
		}
	}
}

// WithMultisent sets the sentence-boundary token. The token is appended to
// every token sequence, and a record whose sentence contains it two or more
// times is marked multi-sentence.
func WithMultisent(token string) Option {
	return func(c *Converter) { c.multisent = token }
}

func WithMismatchPolicy(p MismatchPolicy) Option {
	return func(c *Converter) {
		if p != "" {
			c.mismatch = p
		}
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		tokenizer: tokenizers.NewWhitespaceTokenizer(),
		indexers:  indexers.Default(),
		mismatch:  MismatchStrict,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Indexers returns the injected token indexers.
func (c *Converter) Indexers() map[string]indexers.TokenIndexer {
	return c.indexers
}

// Convert produces the instance for one record. Token sources, in priority
// order: the record's pre-tokenized words, the decomposed raw ULF string,
// the tokenized sentence. Missing tense/class annotations default to the
// token's own text.
func (c *Converter) Convert(rec *models.Record) (*models.Instance, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var (
		words        []string
		tense        []string
		class        []string
		ulfMultisent bool
	)

	switch {
	case len(rec.Words) > 0:
		words = append([]string(nil), rec.Words...)
		tense = rec.Tense
		class = rec.Class
	case hasRawULFString(rec):
		raw, _ := rec.RawULFString()
		d := ulf.Decompose(raw)
		words = d.Words
		tense = d.Tense
		class = d.Class
		ulfMultisent = d.Multisent
	default:
		words = tokenizers.Texts(c.tokenizer.Tokenize(rec.Sentence))
	}

	tense, err := c.alignLabels(tense, words, "tense")
	if err != nil {
		return nil, err
	}
	class, err = c.alignLabels(class, words, "class")
	if err != nil {
		return nil, err
	}

	multisent := ulfMultisent
	if c.multisent != "" {
		if strings.Count(rec.Sentence, c.multisent) >= 2 {
			multisent = true
		}
		// boundary token joins the sequence so the model sees the
		// sentence transition
		words = append(words, c.multisent)
		tense = append(tense, c.multisent)
		class = append(class, c.multisent)
	}

	return &models.Instance{
		Words:     words,
		Tense:     tense,
		Class:     class,
		Multisent: multisent,
		Metadata: models.Metadata{
			SID:       rec.SID,
			Sentence:  rec.Sentence,
			RawULF:    rec.RawULF,
			AMR:       rec.AMR,
			ParsedULF: rec.ParsedULF,
		},
	}, nil
}

// alignLabels returns a label sequence of exactly len(words). A nil sequence
// defaults every position to the token text. A misaligned sequence is an
// error under strict policy, otherwise it is truncated or padded, padded
// positions again taking the token text.
func (c *Converter) alignLabels(labels, words []string, field string) ([]string, error) {
	n := len(words)

	if labels == nil {
		out := make([]string, n)
		copy(out, words)
		return out, nil
	}

	if len(labels) != n && c.mismatch == MismatchStrict {
		return nil, models.NewLengthMismatchError(field, n, len(labels))
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(labels) {
			out[i] = labels[i]
		} else {
			out[i] = words[i]
		}
	}
	return out, nil
}

func hasRawULFString(rec *models.Record) bool {
	s, ok := rec.RawULFString()
	return ok && s != ""
}
