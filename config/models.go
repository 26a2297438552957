package config

// Config holds the configuration of the application.
// Use config.LoadConfig to create a new instance.
type Config struct {
	Reader ReaderConfig `mapstructure:"reader"`
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
}

// ReaderConfig controls how records become instances.
type ReaderConfig struct {
	// Tokenizer selects the tokenizer used when a record carries no
	// pre-tokenized words.
	Tokenizer        string `mapstructure:"tokenizer"          validate:"omitempty,oneof=whitespace tiktoken"`
	TiktokenEncoding string `mapstructure:"tiktoken_encoding"`
	// Multisent is the sentence-boundary token. Empty disables
	// multi-sentence handling.
	Multisent string `mapstructure:"multisent"`
	// OnLengthMismatch: strict surfaces an error, truncate repairs the
	// label sequence to the token count deterministically.
	OnLengthMismatch string `mapstructure:"on_length_mismatch" validate:"omitempty,oneof=strict truncate"`
	// OnRecordError: abort stops iteration at the first bad record, skip
	// logs and continues.
	OnRecordError string `mapstructure:"on_record_error"     validate:"omitempty,oneof=abort skip"`
}

type DataConfig struct {
	Input     string `mapstructure:"input"`
	BatchSize int    `mapstructure:"batch_size" validate:"gte=1"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
