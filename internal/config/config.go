package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	engine "github.com/thinkerbell/semantic-engine"
)

// Embedding provider selectors. ProviderNone runs the service in keyword
// fallback mode without touching any provider credentials.
const (
	ProviderVoyage = "voyage"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

const (
	defaultConfigFile = "semantic-engine.yaml"

	configPathEnv  = "SEMANTIC_ENGINE_CONFIG"
	serverAddrEnv  = "SERVER_ADDR"
	corsOriginsEnv = "CORS_ORIGINS"
	providerEnv    = "EMBEDDING_PROVIDER"
	modelEnv       = "EMBEDDING_MODEL"
	dimensionsEnv  = "EMBEDDING_DIMENSIONS"
	thresholdEnv   = "CONFIDENCE_THRESHOLD"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds all settings required to run the service.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Embedding      EmbeddingConfig      `yaml:"embedding"`
	Classification ClassificationConfig `yaml:"classification"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

// EmbeddingConfig selects and tunes the embedding provider.
type EmbeddingConfig struct {
	Provider   string `yaml:"provider"`   // "voyage", "openai" or "none"
	Model      string `yaml:"model"`      // provider default when empty
	Dimensions int    `yaml:"dimensions"` // output dimension, 0 = provider default
}

// ClassificationConfig tunes the classification core.
type ClassificationConfig struct {
	ConfidenceThreshold float64 `yaml:"confidenceThreshold"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads .env (if present), then the YAML configuration file (if
// present), then applies environment overrides on top. The file path comes
// from SEMANTIC_ENGINE_CONFIG, defaulting to "semantic-engine.yaml"; a
// missing file is not an error.
func Load() (*Config, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	cfg := defaultConfig()

	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultConfigFile
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(corsOriginsEnv); v != "" {
		c.Server.CORSOrigins = splitOrigins(v)
	}
	if v := os.Getenv(providerEnv); v != "" {
		c.Embedding.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(modelEnv); v != "" {
		c.Embedding.Model = v
	}
	if v := os.Getenv(dimensionsEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", dimensionsEnv, err)
		}
		c.Embedding.Dimensions = n
	}
	if v := os.Getenv(thresholdEnv); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", thresholdEnv, err)
		}
		c.Classification.ConfidenceThreshold = f
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Embedding.Provider {
	case ProviderVoyage, ProviderOpenAI, ProviderNone:
	default:
		return fmt.Errorf("config: unknown embedding provider %q", c.Embedding.Provider)
	}
	if t := c.Classification.ConfidenceThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("config: confidence threshold must be in (0, 1], got %g", t)
	}
	if c.Embedding.Dimensions < 0 {
		return fmt.Errorf("config: embedding dimensions must be non-negative, got %d", c.Embedding.Dimensions)
	}
	return nil
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if len(override.Server.CORSOrigins) > 0 {
		base.Server.CORSOrigins = override.Server.CORSOrigins
	}

	if override.Embedding.Provider != "" {
		base.Embedding.Provider = strings.ToLower(override.Embedding.Provider)
	}
	if override.Embedding.Model != "" {
		base.Embedding.Model = override.Embedding.Model
	}
	if override.Embedding.Dimensions != 0 {
		base.Embedding.Dimensions = override.Embedding.Dimensions
	}

	if override.Classification.ConfidenceThreshold != 0 {
		base.Classification.ConfidenceThreshold = override.Classification.ConfidenceThreshold
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8000",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"http://localhost:5173",
			},
		},
		Embedding:      EmbeddingConfig{Provider: ProviderVoyage},
		Classification: ClassificationConfig{ConfidenceThreshold: engine.DefaultThreshold},
		Logging:        LoggingConfig{Level: "info"},
	}
}
