package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Postgres  *PostgresConfig  `mapstructure:"postgres"`
	Points    *PointsConfig    `mapstructure:"points"`
	Assistant *AssistantConfig `mapstructure:"assistant"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

// PointsConfig holds the flat per-action point grants.
// These are data, not logic; the defaults match the original platform.
type PointsConfig struct {
	Content int `mapstructure:"content"`
	Event   int `mapstructure:"event"`
}

type AssistantConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// Load reads the YAML config at path, applies MILCAN_* environment
// overrides (e.g. MILCAN_POSTGRES_PASSWORD) and watches the file for changes.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)

	viper.SetEnvPrefix("MILCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("points.content", 10)
	viper.SetDefault("points.event", 25)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return conf, nil
}
