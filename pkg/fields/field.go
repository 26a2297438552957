// Package fields provides the typed containers a training instance is made
// of: token text, per-token label sequences, a single label, and opaque
// metadata. Each kind knows how to count vocabulary entries, index itself
// against a vocabulary, and pad for batching. There is no shared base type;
// a field is a tagged struct and Kind discriminates.
package fields

import "github.com/ulfnlp/ulfdata/pkg/vocab"

type Kind string

const (
	KindText          Kind = "text"
	KindSequenceLabel Kind = "sequence_label"
	KindLabel         Kind = "label"
	KindMetadata      Kind = "metadata"
)

// Field is the capability every container shares. Kind-specific indexing
// lives on the concrete types since their payloads differ.
type Field interface {
	Kind() Kind
	Length() int
	Count(c vocab.Counter)
}

// PadIDs right-pads ids with pad up to length. Sequences already at or over
// length are returned unchanged.
func PadIDs(ids []int, length, pad int) []int {
	if len(ids) >= length {
		return ids
	}
	out := make([]int, length)
	copy(out, ids)
	for i := len(ids); i < length; i++ {
		out[i] = pad
	}
	return out
}

// BatchIDs pads every row to the longest row's length.
func BatchIDs(rows [][]int, pad int) [][]int {
	maxLen := 0
	for _, row := range rows {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = PadIDs(row, maxLen, pad)
	}
	return out
}
