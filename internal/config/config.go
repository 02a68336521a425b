package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Notify NotifyConfig
	JWT    JWTConfig
	Admin  AdminConfig
}

// ServerConfig - HTTP server settings.
type ServerConfig struct {
	Port string
}

// StoreConfig - persistent store settings. Backend is "file", "sqlite" or
// "memory".
type StoreConfig struct {
	Backend    string
	DataDir    string
	SQLitePath string
}

// NotifyConfig - outbound notification channels. Empty values disable a
// channel; with none configured notifications are dropped.
type NotifyConfig struct {
	DiscordWebhookURL string
	TelegramToken     string
	TelegramChatID    int64
}

// JWTConfig - session token settings.
type JWTConfig struct {
	Secret string
}

// AdminConfig - the single built-in admin credential pair.
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from an optional config.yaml in the working
// directory, overridden by STAFF_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("staff")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.data_dir", "./data")
	v.SetDefault("store.sqlite_path", "./data/staff.db")
	v.SetDefault("notify.discord_webhook_url", "")
	v.SetDefault("notify.telegram_token", "")
	v.SetDefault("notify.telegram_chat_id", 0)
	v.SetDefault("jwt.secret", "change_me_in_production")
	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password", "admin")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		Store: StoreConfig{
			Backend:    v.GetString("store.backend"),
			DataDir:    v.GetString("store.data_dir"),
			SQLitePath: v.GetString("store.sqlite_path"),
		},
		Notify: NotifyConfig{
			DiscordWebhookURL: v.GetString("notify.discord_webhook_url"),
			TelegramToken:     v.GetString("notify.telegram_token"),
			TelegramChatID:    v.GetInt64("notify.telegram_chat_id"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
	}

	if cfg.Server.Port == "" {
		return nil, errors.New("server port must be set")
	}
	switch cfg.Store.Backend {
	case "file", "sqlite", "memory":
	default:
		return nil, errors.New("store backend must be file, sqlite or memory")
	}

	return cfg, nil
}
