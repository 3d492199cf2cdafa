// Package config — загрузка конфигурации клиента из YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config — конфигурация приложения.
type Config struct {
	Server      string `yaml:"server"`
	Port        int    `yaml:"port"`
	PlayerID    uint64 `yaml:"player_id"`
	PlayerToken int32  `yaml:"player_token"`
	UseProxy    bool   `yaml:"use_proxy"`

	// TokenWait — ждать пополнения токенов вместо мгновенного отказа.
	TokenWait bool `yaml:"token_wait"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig загружает конфигурацию из файла.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Server: "localhost",
		Port:   28012,
	}
	cfg.Logging.Level = "info"
	return cfg
}
