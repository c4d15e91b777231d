package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// AuthConfig holds session and OAuth configuration.
type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	OAuthClientID     string `mapstructure:"oauth_client_id"`
	OAuthClientSecret string `mapstructure:"oauth_client_secret"`
	OAuthTokenURL     string `mapstructure:"oauth_token_url"`
	OAuthUserURL      string `mapstructure:"oauth_user_url"`
}

// DiscoveryConfig holds configuration for the movie discovery pipeline.
type DiscoveryConfig struct {
	Netzkino NetzkinoConfig `mapstructure:"netzkino"`
	TMDB     TMDBConfig     `mapstructure:"tmdb"`
}

// NetzkinoConfig holds search gateway configuration.
type NetzkinoConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Env     string `mapstructure:"env"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// TMDBConfig holds metadata enricher configuration.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Language     string `mapstructure:"language"`
	Timeout      int    `mapstructure:"timeout"` // seconds
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.cinedaily")
	}

	v.SetEnvPrefix("CINEDAILY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.path", "./data/cinedaily.db")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)
	v.SetDefault("logging.compress", true)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.oauth_token_url", "https://github.com/login/oauth/access_token")
	v.SetDefault("auth.oauth_user_url", "https://api.github.com/user")

	v.SetDefault("discovery.netzkino.base_url", "https://api.netzkino.de.simplecache.net/capi-2.0a/search")
	v.SetDefault("discovery.netzkino.env", "")
	v.SetDefault("discovery.netzkino.timeout", 15)

	v.SetDefault("discovery.tmdb.base_url", "https://api.themoviedb.org/3/find")
	v.SetDefault("discovery.tmdb.image_base_url", "https://image.tmdb.org/t/p/original")
	v.SetDefault("discovery.tmdb.language", "de")
	v.SetDefault("discovery.tmdb.timeout", 15)
}

// Address returns the server address string.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
