package batch

import (
	"strconv"

	"github.com/ulfnlp/ulfdata/pkg/fields"
	"github.com/ulfnlp/ulfdata/pkg/indexers"
	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/vocab"
)

// instFields is the field view of one instance.
type instFields struct {
	text      *fields.TextField
	tense     *fields.SequenceLabelField
	class     *fields.SequenceLabelField
	multisent *fields.LabelField
	metadata  *fields.MetadataField
}

func instanceFields(inst *models.Instance, ixs map[string]indexers.TokenIndexer) (*instFields, error) {
	text := fields.NewTextField(inst.Words, ixs)

	tense, err := fields.NewSequenceLabelField(inst.Tense, text, TenseNamespace)
	if err != nil {
		return nil, err
	}
	class, err := fields.NewSequenceLabelField(inst.Class, text, ClassNamespace)
	if err != nil {
		return nil, err
	}

	return &instFields{
		text:      text,
		tense:     tense,
		class:     class,
		multisent: fields.NewLabelField(strconv.FormatBool(inst.Multisent), MultisentNamespace),
		metadata:  fields.NewMetadataField(inst.Metadata),
	}, nil
}

// BuildVocabulary drains an iterator and accumulates every token and label
// into a fresh vocabulary.
func BuildVocabulary(it Source, ixs map[string]indexers.TokenIndexer) (*vocab.Vocabulary, error) {
	if ixs == nil {
		ixs = indexers.Default()
	}

	counter := make(vocab.Counter)
	err := each(it, func(inst *models.Instance) error {
		ifs, err := instanceFields(inst, ixs)
		if err != nil {
			return err
		}
		ifs.text.Count(counter)
		ifs.tense.Count(counter)
		ifs.class.Count(counter)
		ifs.multisent.Count(counter)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vocab.FromCounter(counter), nil
}
