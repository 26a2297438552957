// Package batch groups instances into fixed-size, padded, fully indexed
// batches ready for a training loop.
package batch

import (
	"io"

	"github.com/ulfnlp/ulfdata/pkg/fields"
	"github.com/ulfnlp/ulfdata/pkg/indexers"
	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/vocab"
)

const (
	TenseNamespace     = "tense_labels"
	ClassNamespace     = "class_labels"
	MultisentNamespace = "multisentence"
)

// Batch is one padded group of indexed instances. Rows across all id fields
// line up by instance.
type Batch struct {
	Size      int
	TokenIDs  map[string][][]int
	TenseIDs  [][]int
	ClassIDs  [][]int
	Multisent []int
	Metadata  []models.Metadata
}

// Batcher drains a reader iterator into batches of at most size instances,
// indexing against the given vocabulary.
type Batcher struct {
	size int
	v    *vocab.Vocabulary
	ixs  map[string]indexers.TokenIndexer
}

func NewBatcher(size int, v *vocab.Vocabulary, ixs map[string]indexers.TokenIndexer) *Batcher {
	if size < 1 {
		size = 1
	}
	if ixs == nil {
		ixs = indexers.Default()
	}
	return &Batcher{size: size, v: v, ixs: ixs}
}

// Next pulls up to the batch size from the source. It returns io.EOF once
// the source is exhausted.
func (b *Batcher) Next(src Source) (*Batch, error) {
	var insts []*models.Instance
	for len(insts) < b.size {
		inst, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)
	}
	if len(insts) == 0 {
		return nil, io.EOF
	}
	return b.assemble(insts)
}

func (b *Batcher) assemble(insts []*models.Instance) (*Batch, error) {
	out := &Batch{
		Size:     len(insts),
		TokenIDs: make(map[string][][]int),
	}

	tokenRows := make(map[string][][]int)
	var tenseRows, classRows [][]int

	for _, inst := range insts {
		ifs, err := instanceFields(inst, b.ixs)
		if err != nil {
			return nil, err
		}

		for name, ids := range ifs.text.Index(b.v) {
			tokenRows[name] = append(tokenRows[name], ids)
		}

		tenseIDs, err := ifs.tense.Index(b.v)
		if err != nil {
			return nil, err
		}
		tenseRows = append(tenseRows, tenseIDs)

		classIDs, err := ifs.class.Index(b.v)
		if err != nil {
			return nil, err
		}
		classRows = append(classRows, classIDs)

		msID, err := ifs.multisent.Index(b.v)
		if err != nil {
			return nil, err
		}
		out.Multisent = append(out.Multisent, msID)

		out.Metadata = append(out.Metadata, ifs.metadata.Value.(models.Metadata))
	}

	for name, rows := range tokenRows {
		out.TokenIDs[name] = fields.BatchIDs(rows, vocab.PaddingID)
	}
	out.TenseIDs = fields.BatchIDs(tenseRows, vocab.PaddingID)
	out.ClassIDs = fields.BatchIDs(classRows, vocab.PaddingID)

	return out, nil
}
