package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	CoinGecko CoinGeckoConfig `koanf:"coingecko"`
	Character CharacterConfig `koanf:"character"`
}

type ServerConfig struct {
	Port              string `koanf:"port"`
	RequestTimeoutSec int    `koanf:"request_timeout_sec"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

type CoinGeckoConfig struct {
	BaseURL    string `koanf:"base_url"`
	APIKey     string `koanf:"api_key"`
	VsCurrency string `koanf:"vs_currency"`
}

type CharacterConfig struct {
	Path        string `koanf:"path"`
	LLMProvider string `koanf:"llm_provider"` // openai, anthropic, local
	Voice       bool   `koanf:"voice"`
	Bootstrap   bool   `koanf:"bootstrap"`
}

// Load layers defaults, an optional YAML file and AGENT_-prefixed
// environment variables (AGENT_COINGECKO_API_KEY -> coingecko.api_key).
// A missing file at the default path is fine; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	k.Set("server.port", "8080")
	k.Set("server.request_timeout_sec", 10)
	k.Set("log.level", "info")
	k.Set("log.format", "text")
	k.Set("coingecko.base_url", "https://api.coingecko.com/api/v3")
	k.Set("coingecko.vs_currency", "usd")
	k.Set("character.llm_provider", "local")
	k.Set("character.bootstrap", true)

	// 1. Load from file
	if path == "" {
		if _, err := os.Stat("agent.yaml"); err == nil {
			path = "agent.yaml"
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	// 2. Load from ENV (AGENT_COINGECKO_API_KEY -> coingecko.api_key).
	// Only the first underscore separates the section, so keys like
	// api_key survive the mapping.
	if err := k.Load(env.Provider("AGENT_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "AGENT_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate aggregates every failed field into a single error so startup
// reports all problems at once.
func (c *Config) Validate() error {
	var bad []string
	if strings.TrimSpace(c.Server.Port) == "" {
		bad = append(bad, "server.port is required")
	}
	if c.Server.RequestTimeoutSec <= 0 {
		bad = append(bad, "server.request_timeout_sec must be positive")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		bad = append(bad, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if strings.TrimSpace(c.CoinGecko.BaseURL) == "" {
		bad = append(bad, "coingecko.base_url is required")
	}
	if strings.TrimSpace(c.CoinGecko.VsCurrency) == "" {
		bad = append(bad, "coingecko.vs_currency is required")
	}
	switch strings.ToLower(c.Character.LLMProvider) {
	case "", "local", "openai", "anthropic":
	default:
		bad = append(bad, fmt.Sprintf("character.llm_provider unknown: %q", c.Character.LLMProvider))
	}
	if len(bad) > 0 {
		return fmt.Errorf("config invalid: %s", strings.Join(bad, "; "))
	}
	return nil
}
