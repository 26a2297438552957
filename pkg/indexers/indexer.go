// Package indexers turns token sequences into integer id sequences under a
// vocabulary namespace. Indexers are injected into the reader keyed by index
// name, so a single token sequence can produce several representations.
package indexers

import "github.com/ulfnlp/ulfdata/pkg/vocab"

// TokenIndexer is one indexing strategy for a token sequence.
type TokenIndexer interface {
	// Namespace is the vocabulary namespace this indexer reads and writes.
	Namespace() string
	// Count accumulates vocabulary counts for the token texts.
	Count(c vocab.Counter, words []string)
	// Index maps the token texts to ids. Unknown tokens resolve to the
	// namespace's OOV id.
	Index(v *vocab.Vocabulary, words []string) []int
}

// Default returns the standard indexer map: a single-id indexer under the
// "tokens" index name.
func Default() map[string]TokenIndexer {
	return map[string]TokenIndexer{"tokens": NewSingleIDIndexer()}
}
