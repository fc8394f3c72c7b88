package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Backup   *BackupConfig   `mapstructure:"backup"`
	Visitor  *VisitorConfig  `mapstructure:"visitor"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
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

type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

type VisitorConfig struct {
	CookieName   string `mapstructure:"cookie_name"`
	CookieMaxAge int    `mapstructure:"cookie_max_age"`
}

// Load reads the YAML config at path, expanding ${ENV_VAR} placeholders
// from the environment before unmarshalling.
func Load(path string) (*AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile -> %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	expanded := os.ExpandEnv(string(raw))
	if err = v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("viper.ReadConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err = v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	v.SetConfigFile(path)
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("backup.dir", "./backups")
	v.SetDefault("visitor.cookie_name", "visitor_id")
	v.SetDefault("visitor.cookie_max_age", 172800) // 2 days
}
