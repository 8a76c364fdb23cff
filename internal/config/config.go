// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// NotebookStore selects the notebook persistence backend.
type NotebookStore string

const (
	NotebookStoreFile  NotebookStore = "file"
	NotebookStoreMySQL NotebookStore = "mysql"
)

type Config struct {
	Notebook  NotebookConfig  `mapstructure:"notebook"`
	Languages LanguagesConfig `mapstructure:"languages"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

type NotebookConfig struct {
	Store string `mapstructure:"store" validate:"oneof=file mysql"`
	// Path is the YAML snapshot file of the file store.
	Path string `mapstructure:"path" validate:"required"`
}

type LanguagesConfig struct {
	Native string `mapstructure:"native" validate:"language_code"`
	Target string `mapstructure:"target" validate:"language_code"`
	// StatePath persists the selection across runs; Native and Target are
	// the first-run defaults.
	StatePath string `mapstructure:"state_path"`
}

type OutputsConfig struct {
	StoryDirectory string `mapstructure:"story_directory"`
	AudioDirectory string `mapstructure:"audio_directory"`
}

type OpenAIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	ImageModel     string `mapstructure:"image_model"`
	SpeechModel    string `mapstructure:"speech_model"`
	Voice          string `mapstructure:"voice"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	TLS             bool   `mapstructure:"tls"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lingopop")
	}

	v.SetDefault("notebook.store", string(NotebookStoreFile))
	v.SetDefault("notebook.path", filepath.Join("notebooks", "notebook.yml"))
	v.SetDefault("languages.native", "en")
	v.SetDefault("languages.target", "es")
	v.SetDefault("languages.state_path", filepath.Join("notebooks", "languages.yml"))
	v.SetDefault("outputs.story_directory", filepath.Join("outputs", "stories"))
	v.SetDefault("outputs.audio_directory", filepath.Join("outputs", "audio"))
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.image_model", "dall-e-3")
	v.SetDefault("openai.speech_model", "tts-1")
	v.SetDefault("openai.voice", "nova")
	v.SetDefault("openai.timeout_seconds", 60)
	v.SetDefault("openai.retry_attempts", 2)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)

	// Bind OpenAI secrets to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
