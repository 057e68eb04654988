package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Data struct {
		Dir        string `envconfig:"KASA_DATA_DIR" default:"data"`
		Ledger     string `envconfig:"KASA_LEDGER_FILE" default:"transactions.psv"`
		Sources    string `envconfig:"KASA_SOURCES_FILE" default:"sources.json"`
		Vocabulary string `envconfig:"KASA_VOCAB_FILE" default:"vocabulary.yaml"`
		Mappings   string `envconfig:"KASA_MAPPINGS_FILE" default:"categories.json"`
	}

	Home struct {
		Timezone string `envconfig:"KASA_TIMEZONE" default:"Europe/Warsaw"`
		Currency string `envconfig:"KASA_CURRENCY" default:"PLN"`
	}
}

func (c *Config) LedgerPath() string {
	return filepath.Join(c.Data.Dir, c.Data.Ledger)
}

func (c *Config) SourcesPath() string {
	return filepath.Join(c.Data.Dir, c.Data.Sources)
}

func (c *Config) VocabularyPath() string {
	return filepath.Join(c.Data.Dir, c.Data.Vocabulary)
}

func (c *Config) MappingsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.Mappings)
}

func Load() (*Config, error) {
	// Optional .env next to the binary; environment variables win.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
