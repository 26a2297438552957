package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/testutils"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadAll(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	path := writeDataset(t, testutils.TestDataset())

	insts, err := r.ReadAll(path)
	require.NoError(t, err)
	require.Len(t, insts, 3)

	assert.Equal(t, "s1", insts[0].Metadata.SID)
	assert.Equal(t, "s2", insts[1].Metadata.SID)
	assert.Equal(t, "s3", insts[2].Metadata.SID)
}

func TestReadIsRestartable(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	path := writeDataset(t, testutils.TestDataset())

	first, err := r.ReadAll(path)
	require.NoError(t, err)
	second, err := r.ReadAll(path)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-reading the dataset changed the sequence:\n%s", diff)
	}
}

func TestReadMissingFile(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	_, err := r.Read(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}

// tenLineDataset has an invalid JSON line at line 5.
func tenLineDataset() string {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		if i == 5 {
			sb.WriteString("{not json\n")
			continue
		}
		fmt.Fprintf(&sb, `{"sid": "s%d", "sentence": "Sentence %d"}`+"\n", i, i)
	}
	return sb.String()
}

func TestParseErrorAborts(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	it, err := r.Read(writeDataset(t, tenLineDataset()))
	require.NoError(t, err)
	defer it.Close()

	var got []*models.Instance
	for {
		inst, err := it.Next()
		if err != nil {
			require.ErrorIs(t, err, models.ErrParse)
			var parseErr *models.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, 5, parseErr.Line)
			break
		}
		got = append(got, inst)
	}
	// nothing after the offending line is produced
	assert.Len(t, got, 4)

	// the iterator stays terminated
	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestParseErrorSkips(t *testing.T) {
	r := NewReader(nil, ErrorSkip)

	insts, err := r.ReadAll(writeDataset(t, tenLineDataset()))
	require.NoError(t, err)
	assert.Len(t, insts, 9)
}

func TestBlankLinesIgnored(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	content := "\n" + testutils.TestDatasetLines[0] + "\n\n" + testutils.TestDatasetLines[1] + "\n\n"

	insts, err := r.ReadAll(writeDataset(t, content))
	require.NoError(t, err)
	assert.Len(t, insts, 2)
}

func TestMalformedRecordAborts(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	content := `{"sentence": "missing sid"}` + "\n"

	_, err := r.ReadAll(writeDataset(t, content))
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}

func TestReadFromStream(t *testing.T) {
	r := NewReader(nil, ErrorAbort)
	it := r.ReadFrom(io.NopCloser(strings.NewReader(testutils.TestDataset())))
	defer it.Close()

	count := 0
	for {
		_, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 3, count)
}

func TestNewReaderFromConfig(t *testing.T) {
	cfg := testutils.NewTestConfig()
	cfg.Reader.Multisent = "@@SENT@@"

	r, err := NewReaderFromConfig(cfg)
	require.NoError(t, err)

	inst, err := r.Converter().Convert(&models.Record{SID: "s1", Sentence: "Hi."})
	require.NoError(t, err)
	assert.Equal(t, "@@SENT@@", inst.Words[len(inst.Words)-1])
}
