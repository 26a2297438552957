package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulfnlp/ulfdata/pkg/indexers"
	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/vocab"
)

func TestPadIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 0, 0}, PadIDs([]int{1, 2}, 4, 0))
	assert.Equal(t, []int{1, 2}, PadIDs([]int{1, 2}, 2, 0))
	assert.Equal(t, []int{1, 2}, PadIDs([]int{1, 2}, 1, 0))
}

func TestBatchIDsPadsToLongestRow(t *testing.T) {
	rows := BatchIDs([][]int{{1}, {2, 3, 4}, {5, 6}}, 0)
	assert.Equal(t, [][]int{{1, 0, 0}, {2, 3, 4}, {5, 6, 0}}, rows)
}

func TestTextFieldIndex(t *testing.T) {
	v := vocab.New()
	a := v.AddToken(vocab.DefaultTokenNamespace, "a")
	b := v.AddToken(vocab.DefaultTokenNamespace, "b")

	f := NewTextField([]string{"a", "b", "a"}, indexers.Default())
	assert.Equal(t, KindText, f.Kind())
	assert.Equal(t, 3, f.Length())

	indexed := f.Index(v)
	assert.Equal(t, []int{a, b, a}, indexed["tokens"])
}

func TestSequenceLabelFieldRejectsMisalignment(t *testing.T) {
	text := NewTextField([]string{"a", "b"}, indexers.Default())

	_, err := NewSequenceLabelField([]string{"x"}, text, "tense_labels")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLengthMismatch)
}

func TestLabelFieldIndex(t *testing.T) {
	v := vocab.New()
	id := v.AddToken("multisentence", "true")

	f := NewLabelField("true", "multisentence")
	got, err := f.Index(v)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = NewLabelField("unseen", "multisentence").Index(v)
	assert.Error(t, err)
}

func TestMetadataFieldIsInert(t *testing.T) {
	c := make(vocab.Counter)
	f := NewMetadataField(models.Metadata{SID: "s1"})
	f.Count(c)
	assert.Empty(t, c)
	assert.Equal(t, 0, f.Length())
}
