package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything main wires at startup. Values come from an
// optional config.yaml with environment variables taking precedence
// (DB_HOST overrides db.host and so on).
type Config struct {
	Port string

	DBDSN string

	BasketSecret string
	AdminUser    string
	AdminPass    string
	AdminSecret  string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	NotifyEmail string

	TelegramToken   string
	TelegramChatIDs []string

	AnalyticsRefresh time.Duration
	RateLimitPerMin  int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "butchery")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("analytics.refresh", "5m")
	v.SetDefault("ratelimit.per_min", 120)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		DBDSN:            v.GetString("db.dsn"),
		BasketSecret:     v.GetString("basket.secret"),
		AdminUser:        v.GetString("admin.user"),
		AdminPass:        v.GetString("admin.pass"),
		AdminSecret:      v.GetString("admin.secret"),
		SMTPHost:         v.GetString("smtp.host"),
		SMTPPort:         v.GetInt("smtp.port"),
		SMTPUser:         v.GetString("smtp.user"),
		SMTPPass:         v.GetString("smtp.pass"),
		NotifyEmail:      v.GetString("notify.email"),
		TelegramToken:    v.GetString("telegram.token"),
		AnalyticsRefresh: v.GetDuration("analytics.refresh"),
		RateLimitPerMin:  v.GetInt("ratelimit.per_min"),
	}
	if raw := v.GetString("telegram.chat_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.TelegramChatIDs = append(cfg.TelegramChatIDs, id)
			}
		}
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = "host=" + v.GetString("db.host") +
			" user=" + v.GetString("db.user") +
			" password=" + v.GetString("db.password") +
			" dbname=" + v.GetString("db.name") +
			" port=" + v.GetString("db.port") +
			" sslmode=" + v.GetString("db.sslmode")
	}
	if cfg.AnalyticsRefresh <= 0 {
		cfg.AnalyticsRefresh = 5 * time.Minute
	}
	if cfg.BasketSecret == "" {
		cfg.BasketSecret = "dev-insecure"
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = "admin"
	}
	if cfg.AdminPass == "" {
		cfg.AdminPass = "admin123"
	}
	if cfg.AdminSecret == "" {
		cfg.AdminSecret = "dev-admin-secret"
	}
	return cfg, nil
}
