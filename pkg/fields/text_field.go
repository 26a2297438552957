package fields

import (
	"github.com/ulfnlp/ulfdata/pkg/indexers"
	"github.com/ulfnlp/ulfdata/pkg/vocab"
)

// TextField holds an ordered token sequence together with the indexers that
// turn it into model input.
type TextField struct {
	Words    []string
	Indexers map[string]indexers.TokenIndexer
}

func NewTextField(words []string, ixs map[string]indexers.TokenIndexer) *TextField {
	return &TextField{Words: words, Indexers: ixs}
}

func (f *TextField) Kind() Kind {
	return KindText
}

func (f *TextField) Length() int {
	return len(f.Words)
}

func (f *TextField) Count(c vocab.Counter) {
	for _, ix := range f.Indexers {
		ix.Count(c, f.Words)
	}
}

// Index produces one id sequence per index name.
func (f *TextField) Index(v *vocab.Vocabulary) map[string][]int {
	out := make(map[string][]int, len(f.Indexers))
	for name, ix := range f.Indexers {
		out[name] = ix.Index(v, f.Words)
	}
	return out
}

var _ Field = &TextField{}
