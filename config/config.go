package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
)

// Config holds all configuration for the assistant service
type Config struct {
	General     GeneralConfig     `mapstructure:"general"`
	Server      ServerConfig      `mapstructure:"server"`
	Ollama      OllamaConfig      `mapstructure:"ollama"`
	Retrieval   RetrievalConfig   `mapstructure:"retrieval"`
	Knowledge   KnowledgeConfig   `mapstructure:"knowledge"`
	Newsletters NewslettersConfig `mapstructure:"newsletters"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// OllamaConfig describes the local inference endpoint
type OllamaConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	ModelLabel        string        `mapstructure:"model_label"`
	Temperature       float64       `mapstructure:"temperature"`
	ChatTimeout       time.Duration `mapstructure:"chat_timeout"`
	NewsletterTimeout time.Duration `mapstructure:"newsletter_timeout"`
}

// RetrievalConfig controls document search behaviour
type RetrievalConfig struct {
	TopK int `mapstructure:"top_k"`
	// DedupeExpansion switches query expansion to a corrected mode where
	// overlapping synonym matches no longer inflate scores. The reference
	// behaviour (false) keeps duplicate expanded terms.
	DedupeExpansion bool `mapstructure:"dedupe_expansion"`
}

// KnowledgeConfig optionally points at a JSON document overlay
type KnowledgeConfig struct {
	Path string `mapstructure:"path"`
}

// NewslettersConfig controls newsletter generation
type NewslettersConfig struct {
	Topics   []models.Topic `mapstructure:"topics"`
	CacheTTL time.Duration  `mapstructure:"cache_ttl"`
}

func (c *Config) Validate() error {
	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("retrieval.top_k must be > 0")
	}
	if c.Ollama.ChatTimeout <= 0 || c.Ollama.NewsletterTimeout <= 0 {
		return fmt.Errorf("ollama timeouts must be > 0")
	}
	if c.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama.base_url must be set")
	}
	return nil
}

// DefaultTopics is the reference pair of newsletter subjects. The list is
// configurable (newsletters.topics); this is only the default.
func DefaultTopics() []models.Topic {
	return []models.Topic{
		{Topic: "Latest AI and Software Engineering trends and breakthroughs", Category: "AI & Software Engineering"},
		{Topic: "Electronics hardware development and Design for Testability (DFT) methodologies", Category: "Electronics & DFT"},
	}
}

// Load reads configuration from the given file (or the default search path
// when empty) merged over defaults and QBIT_* environment variables. A
// missing config file is fine; the defaults describe a working local setup.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("general.debug", false)
	v.SetDefault("general.log_level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.1:8b")
	v.SetDefault("ollama.model_label", "Llama 3.1 8B (Ollama)")
	v.SetDefault("ollama.temperature", 0.3)
	v.SetDefault("ollama.chat_timeout", 30*time.Second)
	v.SetDefault("ollama.newsletter_timeout", 15*time.Second)
	v.SetDefault("retrieval.top_k", 3)
	v.SetDefault("retrieval.dedupe_expansion", false)
	v.SetDefault("knowledge.path", "")
	v.SetDefault("newsletters.cache_ttl", time.Duration(0))

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("QBIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(cfg.Newsletters.Topics) == 0 {
		cfg.Newsletters.Topics = DefaultTopics()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
