package config

import (
	"errors"
	"strings"

	"github.com/ulfnlp/ulfdata/internal"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

var defaults = map[string]any{
	"reader.tokenizer":          "whitespace",
	"reader.tiktoken_encoding":  "cl100k_base",
	"reader.multisent":          "",
	"reader.on_length_mismatch": "strict",
	"reader.on_record_error":    "abort",
	"data.batch_size":           1,
	"log.level":                 "info",
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error unless one was named explicitly;
// defaults and ENV still apply.
func LoadConfig(configFile string) (*Config, error) {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ULF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks config constraints declared via validate struct tags.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO
// if not set or invalid.
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
}
