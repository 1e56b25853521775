package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the flat anvad configuration, stored at ~/.anvad/config.json.
// Every field has a usable zero-value default so a missing file is fine.
type Config struct {
	ListenAddr    string `json:"listen_addr,omitempty"`    // default ":8080"
	RedisAddr     string `json:"redis_addr,omitempty"`     // empty = file-backed cart store
	WebhookSecret string `json:"webhook_secret,omitempty"` // empty = webhook route disabled

	SMTPHost     string `json:"smtp_host,omitempty"` // empty = log-only mailer
	SMTPPort     int    `json:"smtp_port,omitempty"`
	SMTPUsername string `json:"smtp_username,omitempty"`
	SMTPPassword string `json:"smtp_password,omitempty"`
	SMTPFrom     string `json:"smtp_from,omitempty"`
}

// Dir returns the anvad data directory, creating nothing.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".anvad"), nil
}

// LoadConfig reads config.json from the anvad data directory. A missing
// file yields the default config, not an error.
func LoadConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return loadFrom(filepath.Join(dir, "config.json"))
}

func loadFrom(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ListenAddr: ":8080",
		SMTPPort:   587,
		SMTPFrom:   "orders@anvad.example",
	}
}

// SaveConfig writes config.json to the anvad data directory.
func SaveConfig(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
