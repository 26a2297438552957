package indexers

import "github.com/ulfnlp/ulfdata/pkg/vocab"

// SingleIDIndexer maps each distinct token text to one integer id.
type SingleIDIndexer struct {
	namespace string
}

func NewSingleIDIndexer() *SingleIDIndexer {
	return &SingleIDIndexer{namespace: vocab.DefaultTokenNamespace}
}

// NewSingleIDIndexerWithNamespace indexes under a non-default namespace.
func NewSingleIDIndexerWithNamespace(namespace string) *SingleIDIndexer {
	return &SingleIDIndexer{namespace: namespace}
}

func (ix *SingleIDIndexer) Namespace() string {
	return ix.namespace
}

func (ix *SingleIDIndexer) Count(c vocab.Counter, words []string) {
	for _, w := range words {
		c.Add(ix.namespace, w)
	}
}

func (ix *SingleIDIndexer) Index(v *vocab.Vocabulary, words []string) []int {
	ids := make([]int, len(words))
	for i, w := range words {
		id, _ := v.ID(ix.namespace, w)
		ids[i] = id
	}
	return ids
}

var _ TokenIndexer = &SingleIDIndexer{}
