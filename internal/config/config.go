package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minamhq/minam-backend/internal/platform/envutil"
)

// configFileEnv names an optional YAML file that overlays the env-derived
// defaults. Env vars win over file values.
const configFileEnv = "MINAM_CONFIG_YAML"

type Config struct {
	Address        string   `yaml:"address"`
	LogMode        string   `yaml:"log_mode"`
	AllowOrigins   []string `yaml:"allow_origins"`
	OpenAIEnabled  bool     `yaml:"openai_enabled"`
	OpenAIModel    string   `yaml:"openai_model"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
}

func defaults() Config {
	return Config{
		Address: ":8787",
		LogMode: "development",
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		OpenAIEnabled:  false,
		OpenAIModel:    "gpt-4o",
		MaxUploadBytes: 16 << 20,
	}
}

func Load() (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv(configFileEnv)); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Address = envutil.String("MINAM_ADDRESS", cfg.Address)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.AllowOrigins = envutil.StringSlice("MINAM_ALLOW_ORIGINS", cfg.AllowOrigins)
	cfg.OpenAIEnabled = envutil.Bool("MINAM_OPENAI_ENABLED", cfg.OpenAIEnabled)
	cfg.OpenAIModel = envutil.String("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.MaxUploadBytes = int64(envutil.Int("MINAM_MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))

	return cfg, nil
}
