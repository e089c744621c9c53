package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported model providers
const (
	ProviderHuggingFace = "huggingface"
	ProviderGCP         = "gcp"
	ProviderOpenAI      = "openai"
)

// DefaultReviews are the sample IMDb-like reviews classified on every run
var DefaultReviews = []string{
	"I absolutely loved this movie! The acting was fantastic and the story was beautiful.",
	"It was a waste of time. The plot was boring and predictable.",
	"An average movie, not too bad but nothing special either.",
	"The direction and cinematography were breathtaking. Highly recommend it!",
	"Terrible movie. I walked out halfway through.",
}

// Config holds all configuration for the application
type Config struct {
	Model   ModelConfig  `mapstructure:"model"`
	Output  OutputConfig `mapstructure:"output"`
	Log     LogConfig    `mapstructure:"log"`
	Reviews []string     `mapstructure:"reviews"`
}

// ModelConfig holds the settings of the pretrained model backend
type ModelConfig struct {
	Provider     string        `mapstructure:"provider"`
	Name         string        `mapstructure:"name"`
	BaseURL      string        `mapstructure:"base_url"`
	APIToken     string        `mapstructure:"api_token"`
	Credentials  string        `mapstructure:"credentials"`
	Timeout      time.Duration `mapstructure:"timeout"`
	WaitForModel bool          `mapstructure:"wait_for_model"`
}

// OutputConfig holds where results are written
type OutputConfig struct {
	CSVPath   string `mapstructure:"csv_path"`
	ChartPath string `mapstructure:"chart_path"`
	ShowChart bool   `mapstructure:"show_chart"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional config.yaml, a .env file and
// SENTIMENT_ prefixed environment variables. Every key has a default; the
// default huggingface provider additionally needs an API token at load time
// (SENTIMENT_MODEL_API_TOKEN or HF_TOKEN).
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SENTIMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// HF_TOKEN is the conventional Hugging Face variable
	if err := v.BindEnv("model.api_token", "SENTIMENT_MODEL_API_TOKEN", "HF_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind api token env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Model defaults
	v.SetDefault("model.provider", ProviderHuggingFace)
	// empty name and base_url resolve to the provider's own defaults
	v.SetDefault("model.name", "")
	v.SetDefault("model.base_url", "")
	v.SetDefault("model.api_token", "")
	v.SetDefault("model.credentials", "")
	v.SetDefault("model.timeout", 60*time.Second)
	v.SetDefault("model.wait_for_model", true)

	// Output defaults
	v.SetDefault("output.csv_path", "sentiment_results.csv")
	v.SetDefault("output.chart_path", "sentiment_distribution.png")
	v.SetDefault("output.show_chart", true)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("reviews", DefaultReviews)
}

// Validate checks the values that cannot be defaulted away
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case ProviderHuggingFace, ProviderGCP, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown model provider %q", c.Model.Provider)
	}
	if c.Output.CSVPath == "" {
		return errors.New("output.csv_path must not be empty")
	}
	if c.Output.ChartPath == "" {
		return errors.New("output.chart_path must not be empty")
	}
	return nil
}
