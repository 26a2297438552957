package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "log:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, "whitespace", cfg.Reader.Tokenizer)
	assert.Equal(t, "cl100k_base", cfg.Reader.TiktokenEncoding)
	assert.Equal(t, "", cfg.Reader.Multisent)
	assert.Equal(t, "strict", cfg.Reader.OnLengthMismatch)
	assert.Equal(t, "abort", cfg.Reader.OnRecordError)
	assert.Equal(t, 1, cfg.Data.BatchSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
reader:
  tokenizer: tiktoken
  multisent: "@@SENT@@"
  on_record_error: skip
data:
  input: ./all.jsonl
  batch_size: 32
`))
	require.NoError(t, err)

	assert.Equal(t, "tiktoken", cfg.Reader.Tokenizer)
	assert.Equal(t, "@@SENT@@", cfg.Reader.Multisent)
	assert.Equal(t, "skip", cfg.Reader.OnRecordError)
	assert.Equal(t, "./all.jsonl", cfg.Data.Input)
	assert.Equal(t, 32, cfg.Data.BatchSize)
}

func TestValidateRejectsBadValues(t *testing.T) {
	assert.Error(t, Validate(&Config{
		Reader: ReaderConfig{Tokenizer: "porter-stemmer"},
		Data:   DataConfig{BatchSize: 1},
	}))
	assert.Error(t, Validate(&Config{
		Reader: ReaderConfig{OnRecordError: "retry"},
		Data:   DataConfig{BatchSize: 1},
	}))
	assert.Error(t, Validate(&Config{Data: DataConfig{BatchSize: -1}}))
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestJSONSchema(t *testing.T) {
	schema, err := JSONSchema()
	require.NoError(t, err)
	assert.Contains(t, string(schema), "ReaderConfig")
}
