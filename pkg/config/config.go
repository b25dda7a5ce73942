package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the engine settings. Vectors maps a language tag to the
// path of a GloVe text-vector file for that language. The two lexicon paths
// override the sentiment scorer's default lexicon files.
type Config struct {
	DefaultLanguage  string            `yaml:"default_language"`
	Vectors          map[string]string `yaml:"vectors"`
	SentimentLexicon string            `yaml:"sentiment_lexicon"`
	EmojiLexicon     string            `yaml:"emoji_lexicon"`
	LogLevel         string            `yaml:"log_level"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		DefaultLanguage: "en",
		Vectors:         map[string]string{},
		LogLevel:        "warn",
	}
}

func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	c := Default()
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}

	return c, nil
}
