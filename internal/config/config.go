package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Drive   DriveConfig   `yaml:"drive"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Slack   SlackConfig   `yaml:"slack"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`

	// TimeoutSeconds bounds each external call made by the pipeline.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type DriveConfig struct {
	FolderID        string   `yaml:"folder_id"`
	CredentialsPath string   `yaml:"credentials_path"`
	NameKeywords    []string `yaml:"name_keywords"`
	MimeTypes       []string `yaml:"mime_types"`
}

type GeminiConfig struct {
	APIKeys        []string `yaml:"api_keys"`
	Model          string   `yaml:"model"`
	MaxInputChars  int      `yaml:"max_input_chars"`
	MaxAttempts    int      `yaml:"max_attempts"`
	RetryBaseDelay int      `yaml:"retry_base_delay_seconds"`
}

type SlackConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

type PathsConfig struct {
	Archive string `yaml:"archive"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML config file, expanding ${VAR} references from the
// environment so secrets never have to live in the file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate applies defaults and reports every missing required key at once,
// so a misconfigured deployment fails a single run instead of one key per run.
func (c *Config) Validate() error {
	var missing []string

	if c.Drive.FolderID == "" {
		missing = append(missing, "drive.folder_id")
	}
	if c.Drive.CredentialsPath == "" {
		missing = append(missing, "drive.credentials_path")
	}
	if len(c.Gemini.APIKeys) == 0 || allBlank(c.Gemini.APIKeys) {
		missing = append(missing, "gemini.api_keys")
	}
	if c.Slack.BotToken == "" {
		missing = append(missing, "slack.bot_token")
	}
	if c.Slack.ChannelID == "" {
		missing = append(missing, "slack.channel_id")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config keys: %s", strings.Join(missing, ", "))
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxInputChars == 0 {
		c.Gemini.MaxInputChars = 120000
	}
	if c.Gemini.MaxAttempts == 0 {
		c.Gemini.MaxAttempts = 3
	}
	if c.Gemini.RetryBaseDelay == 0 {
		c.Gemini.RetryBaseDelay = 2
	}
	if len(c.Drive.NameKeywords) == 0 {
		c.Drive.NameKeywords = []string{"transcript", "meeting", "会議の録音"}
	}
	if len(c.Drive.MimeTypes) == 0 {
		c.Drive.MimeTypes = []string{
			"application/vnd.google-apps.document",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
			"text/markdown",
		}
	}
	if c.Paths.Archive == "" {
		c.Paths.Archive = "data/archive"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 60
	}

	if c.Gemini.MaxAttempts < 1 {
		return fmt.Errorf("gemini.max_attempts must be at least 1")
	}

	return nil
}

// Timeout returns the per-call deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BaseDelay returns the initial backoff delay as a duration.
func (g *GeminiConfig) BaseDelay() time.Duration {
	return time.Duration(g.RetryBaseDelay) * time.Second
}

func allBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
