package fields

import (
	"fmt"

	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/vocab"
)

// SequenceLabelField holds per-token labels aligned with a TextField.
type SequenceLabelField struct {
	Labels    []string
	Namespace string
}

// NewSequenceLabelField validates alignment against the token sequence the
// labels annotate.
func NewSequenceLabelField(labels []string, seq *TextField, namespace string) (*SequenceLabelField, error) {
	if len(labels) != seq.Length() {
		return nil, models.NewLengthMismatchError(namespace, seq.Length(), len(labels))
	}
	return &SequenceLabelField{Labels: labels, Namespace: namespace}, nil
}

func (f *SequenceLabelField) Kind() Kind {
	return KindSequenceLabel
}

func (f *SequenceLabelField) Length() int {
	return len(f.Labels)
}

func (f *SequenceLabelField) Count(c vocab.Counter) {
	for _, l := range f.Labels {
		c.Add(f.Namespace, l)
	}
}

func (f *SequenceLabelField) Index(v *vocab.Vocabulary) ([]int, error) {
	ids := make([]int, len(f.Labels))
	for i, l := range f.Labels {
		id, ok := v.ID(f.Namespace, l)
		if !ok {
			return nil, fmt.Errorf("label %q not in namespace %q", l, f.Namespace)
		}
		ids[i] = id
	}
	return ids, nil
}

// LabelField holds a single categorical label for the whole instance.
type LabelField struct {
	Label     string
	Namespace string
}

func NewLabelField(label, namespace string) *LabelField {
	return &LabelField{Label: label, Namespace: namespace}
}

func (f *LabelField) Kind() Kind {
	return KindLabel
}

func (f *LabelField) Length() int {
	return 1
}

func (f *LabelField) Count(c vocab.Counter) {
	c.Add(f.Namespace, f.Label)
}

func (f *LabelField) Index(v *vocab.Vocabulary) (int, error) {
	id, ok := v.ID(f.Namespace, f.Label)
	if !ok {
		return 0, fmt.Errorf("label %q not in namespace %q", f.Label, f.Namespace)
	}
	return id, nil
}

var (
	_ Field = &SequenceLabelField{}
	_ Field = &LabelField{}
)
