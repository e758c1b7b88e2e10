// Package config loads the configuration of the backend from the
// environment and an optional poupix.yaml file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// DevelopmentSecret signs tokens when AUTH_SECRET is not set outside of release mode.
const DevelopmentSecret = "poupix-development-secret-do-not-use-in-production"

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrSecretMissing = errors.New("environment variable AUTH_SECRET must be set in release mode")
)

type Database struct {
	Host     string `mapstructure:"db_host"`
	Port     int    `mapstructure:"db_port"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
	Name     string `mapstructure:"db_name"`
}

// Postgres reports if a PostgreSQL server is configured.
func (d Database) Postgres() bool {
	return d.Host != ""
}

// DSN is the connection string for the PostgreSQL server.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC", d.Host, d.Port, d.User, d.Password, d.Name)
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	TTL          time.Duration `mapstructure:"auth_token_ttl"`
	SecureCookie bool          `mapstructure:"auth_secure_cookie"`
}

type Locale struct {
	Currency currency.Unit
	Language language.Tag
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type Config struct {
	Mode             string   `mapstructure:"gin_mode"`
	LogFormat        string   `mapstructure:"log_format"`
	APIURL           *url.URL `mapstructure:"-"`
	Port             int      `mapstructure:"port"`
	CORSAllowOrigins []string `mapstructure:"-"`
	EnablePprof      bool     `mapstructure:"enable_pprof"`
	DataDir          string   `mapstructure:"data_dir"`

	Database Database `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Gemini   Gemini   `mapstructure:",squash"`
	Locale   Locale   `mapstructure:"-"`
}

// Release reports if gin runs in release mode.
func (c Config) Release() bool {
	return c.Mode == "release"
}

// HumanLogs reports if logs are written for humans instead of as JSON.
// Without an explicit LOG_FORMAT, this is the case in debug mode.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.Mode == "debug"
	}

	return c.LogFormat == "human"
}

// SQLitePath is the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "poupix.db")
}

func defaults(v *viper.Viper) {
	v.SetDefault("gin_mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("enable_pprof", false)
	v.SetDefault("data_dir", "data")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "poupix")
	v.SetDefault("db_name", "poupix")
	v.SetDefault("auth_token_ttl", 7*24*time.Hour)
	v.SetDefault("auth_secure_cookie", true)
	v.SetDefault("currency", "BRL")
	v.SetDefault("locale", "pt-BR")
	v.SetDefault("gemini_model", "gemini-2.5-flash")

	// Keys without a default must be bound to be read from the environment
	for _, key := range []string{"log_format", "api_url", "cors_allow_origins", "db_host", "db_password", "auth_secret", "gemini_api_key"} {
		_ = v.BindEnv(key)
	}
}

// Load reads the configuration. Environment variables take precedence
// over values from poupix.yaml.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("poupix")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/poupix")
	v.AutomaticEnv()
	defaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	rawURL := v.GetString("api_url")
	if rawURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	apiURL, err := url.Parse(rawURL)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	c.APIURL = apiURL

	c.CORSAllowOrigins = strings.Fields(v.GetString("cors_allow_origins"))

	c.Locale.Currency, err = currency.ParseISO(v.GetString("currency"))
	if err != nil {
		return Config{}, fmt.Errorf("CURRENCY must be an ISO 4217 code: %w", err)
	}

	c.Locale.Language, err = language.Parse(v.GetString("locale"))
	if err != nil {
		return Config{}, fmt.Errorf("LOCALE must be a BCP 47 language tag: %w", err)
	}

	if c.Auth.Secret == "" {
		if c.Release() {
			return Config{}, ErrSecretMissing
		}

		log.Warn().Msg("AUTH_SECRET is not set, using the development secret")
		c.Auth.Secret = DevelopmentSecret
	}

	return c, nil
}
