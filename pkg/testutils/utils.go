package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/ulfnlp/ulfdata/config"
)

// NewTestConfig returns a config with documented defaults, bypassing file
// and ENV loading so tests stay hermetic.
func NewTestConfig() *config.Config {
	return &config.Config{
		Reader: config.ReaderConfig{
			Tokenizer:        "whitespace",
			TiktokenEncoding: "cl100k_base",
			OnLengthMismatch: "strict",
			OnRecordError:    "abort",
		},
		Data: config.DataConfig{BatchSize: 1},
		Log:  config.LogConfig{Level: "info"},
	}
}

// GenerateRandomSID returns a random hex record identifier.
func GenerateRandomSID(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random SID: %w", err)
	}
	return hex.EncodeToString(bytes)[:length], nil
}
