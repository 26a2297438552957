package fields

import "github.com/ulfnlp/ulfdata/pkg/vocab"

// MetadataField carries an opaque value through batching untouched. It never
// contributes vocabulary entries and is not indexed.
type MetadataField struct {
	Value any
}

func NewMetadataField(value any) *MetadataField {
	return &MetadataField{Value: value}
}

func (f *MetadataField) Kind() Kind {
	return KindMetadata
}

func (f *MetadataField) Length() int {
	return 0
}

func (f *MetadataField) Count(vocab.Counter) {}

var _ Field = &MetadataField{}
