package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type AppConfig struct {
	k *koanf.Koanf
}

func NewAppConfig() *AppConfig {
	c := &AppConfig{k: koanf.New(".")}

	setDefaults(c.k)

	return c
}

func (c *AppConfig) Load(filename ...string) bool {
	loaded := false

	for _, name := range filename {
		if err := c.k.Load(file.Provider(name), yaml.Parser()); err != nil {
			slog.Info(fmt.Sprintf("error loading config: %s", err.Error()))
		} else {
			loaded = true
		}
	}

	return loaded
}

func (c *AppConfig) LoadEnv(prefix string) error {
	return c.k.Load(env.Provider(prefix, ".", func(s string) string {
		s1 := strings.ToLower(strings.TrimPrefix(s, prefix))
		slog.Info("ENV param: " + s1)

		return s1
	}), nil)
}

func (c *AppConfig) Bool(key string) bool {
	return c.k.Bool(key)
}

func (c *AppConfig) String(key string) string {
	return c.k.String(key)
}

func (c *AppConfig) Int(key string) int {
	return c.k.Int(key)
}

func (c *AppConfig) Set(key string, v any) error {
	return c.k.Set(key, v)
}

func (c *AppConfig) HTTPAddr() string {
	return c.k.String("http_addr")
}

// DB is the sqlite database path, used when no db_url is set.
func (c *AppConfig) DB() string {
	return c.k.String("db")
}

// DBUrl is a postgres DSN. When present it wins over the sqlite path.
func (c *AppConfig) DBUrl() string {
	return c.k.String("db_url")
}

func (c *AppConfig) AdminToken() string {
	return c.k.String("admin_token")
}

func (c *AppConfig) JwtSecret() string {
	return c.k.String("jwt_secret")
}

// BaseURL is the public origin used to build invite links.
func (c *AppConfig) BaseURL() string {
	return strings.TrimSuffix(c.k.String("base_url"), "/")
}

func (c *AppConfig) InviteTTL() time.Duration {
	return time.Hour * 24 * time.Duration(c.k.Int("invite_ttl_days"))
}

func (c *AppConfig) Debug() bool {
	return c.k.Bool("debug")
}

func setDefaults(k *koanf.Koanf) {
	k.Set("http_addr", ":8080")
	k.Set("db", "conecta.sqlite")

	k.Set("admin_token", "admin_super_secret_token_change_me_in_production")
	k.Set("jwt_secret", "jwt_dev_secret_change_in_production")

	k.Set("base_url", "http://localhost:8080")
	k.Set("invite_ttl_days", 7)
}
