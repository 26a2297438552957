package reader

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/testutils"
	"github.com/ulfnlp/ulfdata/pkg/ulf"
)

func annotatedRecord() *models.Record {
	return &models.Record{
		SID:      "s1",
		Sentence: "This is a sentence.",
		Words:    []string{"This", "is", "a", "sentence"},
		Tense:    []string{"No Tense", "pres", "No Tense", "No Tense"},
		Class:    []string{"pro", "v", "d", "n"},
	}
}

func TestConvertAnnotatedRecord(t *testing.T) {
	conv := NewConverter()

	inst, err := conv.Convert(annotatedRecord())
	require.NoError(t, err)

	assert.Equal(t, []string{"This", "is", "a", "sentence"}, inst.Words)
	assert.Equal(t, []string{"No Tense", "pres", "No Tense", "No Tense"}, inst.Tense)
	assert.Equal(t, []string{"pro", "v", "d", "n"}, inst.Class)
	assert.False(t, inst.Multisent)
	assert.Equal(t, "This is a sentence.", inst.Metadata.Sentence)
	assert.Equal(t, "s1", inst.Metadata.SID)
}

func TestConvertDefaultsLabelsToWords(t *testing.T) {
	conv := NewConverter()

	inst, err := conv.Convert(&models.Record{
		SID:      "s2",
		Sentence: "Hello world",
		Words:    []string{"Hello", "world"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello", "world"}, inst.Tense)
	assert.Equal(t, []string{"Hello", "world"}, inst.Class)
}

func TestConvertTokenizesSentenceWithoutWords(t *testing.T) {
	conv := NewConverter()

	inst, err := conv.Convert(&models.Record{SID: "s3", Sentence: "Hello world."})
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello", "world", "."}, inst.Words)
	assert.Equal(t, inst.Words, inst.Tense)
	assert.Equal(t, inst.Words, inst.Class)
}

func TestConvertDecomposesRawULF(t *testing.T) {
	conv := NewConverter()

	inst, err := conv.Convert(&models.Record{
		SID:      "s4",
		Sentence: "He ran.",
		RawULF:   json.RawMessage(`"(he.pro (past run.v))"`),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"he", "run"}, inst.Words)
	assert.Equal(t, []string{ulf.NoTenseToken, "past"}, inst.Tense)
	assert.Equal(t, []string{"pro", "v"}, inst.Class)
}

func TestConvertRawULFMultiSent(t *testing.T) {
	conv := NewConverter()

	inst, err := conv.Convert(&models.Record{
		SID:      "s5",
		Sentence: "I see. You go.",
		RawULF:   json.RawMessage(`"MULTI-SENT (i.pro (pres see.v)) (you.pro (pres go.v))"`),
	})
	require.NoError(t, err)
	assert.True(t, inst.Multisent)
}

func TestConvertMetadataRoundTrip(t *testing.T) {
	rec := annotatedRecord()
	rec.RawULF = json.RawMessage(`["raw", {"nested": true}]`)
	rec.AMR = json.RawMessage(`{"root": "r", "edges": [1, 2]}`)
	rec.ParsedULF = json.RawMessage(`["he.pro"]`)

	inst, err := NewConverter().Convert(rec)
	require.NoError(t, err)

	want := models.Metadata{
		SID:       rec.SID,
		Sentence:  rec.Sentence,
		RawULF:    rec.RawULF,
		AMR:       rec.AMR,
		ParsedULF: rec.ParsedULF,
	}
	if diff := cmp.Diff(want, inst.Metadata); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertIdempotent(t *testing.T) {
	conv := NewConverter()
	rec := annotatedRecord()
	sid, err := testutils.GenerateRandomSID(16)
	require.NoError(t, err)
	rec.SID = sid

	first, err := conv.Convert(rec)
	require.NoError(t, err)
	second, err := conv.Convert(rec)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("instances differ across conversions:\n%s", diff)
	}
}

func TestConvertMissingRequiredFields(t *testing.T) {
	conv := NewConverter()

	_, err := conv.Convert(&models.Record{Sentence: "no sid"})
	assert.ErrorIs(t, err, models.ErrMalformedRecord)

	_, err = conv.Convert(&models.Record{SID: "s6"})
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}

func TestConvertLengthMismatchStrict(t *testing.T) {
	conv := NewConverter()

	rec := annotatedRecord()
	rec.Tense = rec.Tense[:2]

	_, err := conv.Convert(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLengthMismatch)

	var mismatch *models.LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "tense", mismatch.Field)
	assert.Equal(t, 4, mismatch.Want)
	assert.Equal(t, 2, mismatch.Got)
}

func TestConvertLengthMismatchTruncate(t *testing.T) {
	conv := NewConverter(WithMismatchPolicy(MismatchTruncate))

	rec := annotatedRecord()
	rec.Tense = []string{"No Tense", "pres"}
	rec.Class = []string{"pro", "v", "d", "n", "extra", "extra"}

	inst, err := conv.Convert(rec)
	require.NoError(t, err)

	// short sequences pad with the token text, long ones truncate
	assert.Equal(t, []string{"No Tense", "pres", "a", "sentence"}, inst.Tense)
	assert.Equal(t, []string{"pro", "v", "d", "n"}, inst.Class)
}

func TestConvertMultisentMarker(t *testing.T) {
	conv := NewConverter(WithMultisent("@@SENT@@"))

	multi, err := conv.Convert(&models.Record{
		SID:      "s7",
		Sentence: "I see. @@SENT@@ You go. @@SENT@@",
		Words:    []string{"I", "see", "You", "go"},
	})
	require.NoError(t, err)
	assert.True(t, multi.Multisent)
	assert.Equal(t, []string{"I", "see", "You", "go", "@@SENT@@"}, multi.Words)
	assert.Len(t, multi.Tense, len(multi.Words))

	single, err := conv.Convert(&models.Record{
		SID:      "s8",
		Sentence: "I see. @@SENT@@",
		Words:    []string{"I", "see"},
	})
	require.NoError(t, err)
	assert.False(t, single.Multisent)
}
