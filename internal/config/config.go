// internal/config/config.go
//
// Typed configuration for the aid, the word list, the session store and the server.
//
// Sources, highest priority first:
//   1. CLI flags bound by the cli package
//   2. Environment variables (WORDLEAID_*, plus PORT / LOG_LEVEL / CLIENT_ORIGIN / JWT_SECRET)
//   3. Config file (YAML)
//   4. Defaults below
//
// Nested keys map to env names with '.' → '_', e.g. store.backend → WORDLEAID_STORE_BACKEND.

package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/store"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/words"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "WORDLEAID"

// Config is the full application configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Aid      AidConfig    `mapstructure:"aid" yaml:"aid"`
	Store    StoreConfig  `mapstructure:"store" yaml:"store"`
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
}

// AidConfig configures comparison, filtering and the default word list.
type AidConfig struct {
	Tiles               string `mapstructure:"tiles" yaml:"tiles"`
	WordLength          int    `mapstructure:"word_length" yaml:"word_length"`
	LoadDefaultWordList bool   `mapstructure:"load_default_word_list" yaml:"load_default_word_list"`
	WordList            string `mapstructure:"word_list" yaml:"word_list"`
	WordListDir         string `mapstructure:"word_list_dir" yaml:"word_list_dir"`
	LowercaseWordList   bool   `mapstructure:"lowercase_word_list" yaml:"lowercase_word_list"`
	CaseInsensitive     bool   `mapstructure:"case_insensitive" yaml:"case_insensitive"`
	Workers             int    `mapstructure:"workers" yaml:"workers"`
}

// StoreConfig selects the session backend.
type StoreConfig struct {
	Backend    string        `mapstructure:"backend" yaml:"backend"`
	SQLitePath string        `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	RedisURL   string        `mapstructure:"redis_url" yaml:"redis_url"`
	SessionTTL time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port         string        `mapstructure:"port" yaml:"port"`
	ClientOrigin string        `mapstructure:"client_origin" yaml:"client_origin"`
	TokenSecret  string        `mapstructure:"token_secret" yaml:"-"`
	TokenTTL     time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
	RateLimit    float64       `mapstructure:"rate_limit" yaml:"rate_limit"`
	RateBurst    int           `mapstructure:"rate_burst" yaml:"rate_burst"`
	MaxResults   int           `mapstructure:"max_results" yaml:"max_results"`
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")

	v.SetDefault("aid.tiles", string(aid.RenderBlocks))
	v.SetDefault("aid.word_length", aid.DefaultWordLength)
	v.SetDefault("aid.load_default_word_list", true)
	v.SetDefault("aid.word_list", aid.DefaultWordListName)
	v.SetDefault("aid.word_list_dir", "")
	v.SetDefault("aid.lowercase_word_list", false)
	v.SetDefault("aid.case_insensitive", false)
	v.SetDefault("aid.workers", runtime.GOMAXPROCS(0))

	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.sqlite_path", "./data/wordleaid.db")
	v.SetDefault("store.redis_url", "redis://localhost:6379/0")
	v.SetDefault("store.session_ttl", 7*24*time.Hour)

	v.SetDefault("server.port", "5175")
	v.SetDefault("server.client_origin", "http://localhost:5173")
	v.SetDefault("server.token_secret", "")
	v.SetDefault("server.token_ttl", 7*24*time.Hour)
	v.SetDefault("server.cache_ttl", 10*time.Minute)
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("server.max_results", 200)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for existing deployments.
	_ = v.BindEnv("log_level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.client_origin", EnvPrefix+"_SERVER_CLIENT_ORIGIN", "CLIENT_ORIGIN")
	_ = v.BindEnv("server.token_secret", EnvPrefix+"_SERVER_TOKEN_SECRET", "JWT_SECRET")
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := aid.ParseRendering(cfg.Aid.Tiles); err != nil {
		return Config{}, fmt.Errorf("aid.tiles: %w", err)
	}
	if cfg.Aid.WordLength <= 0 {
		return Config{}, fmt.Errorf("aid.word_length: %w: must be positive, got %d", aid.ErrInvalidInput, cfg.Aid.WordLength)
	}
	return cfg, nil
}

// AidConfig converts to the aid's construction-time configuration.
func (c Config) AidConfig() aid.Config {
	return aid.Config{
		Rendering:           aid.Rendering(c.Aid.Tiles),
		WordLength:          c.Aid.WordLength,
		LoadDefaultWordList: c.Aid.LoadDefaultWordList,
		WordListName:        c.Aid.WordList,
		CaseInsensitive:     c.Aid.CaseInsensitive,
		Workers:             c.Aid.Workers,
	}
}

// Loader builds the word list loader.
func (c Config) Loader() *words.Loader {
	return &words.Loader{
		Dir:       c.Aid.WordListDir,
		Length:    c.Aid.WordLength,
		Lowercase: c.Aid.LowercaseWordList,
	}
}

// NewAid builds the aid, loading the default word list when configured.
func (c Config) NewAid() (*aid.Aid, error) {
	return aid.New(c.AidConfig(), c.Loader())
}

// StoreOptions selects the session backend.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:    c.Store.Backend,
		SQLitePath: c.Store.SQLitePath,
		RedisURL:   c.Store.RedisURL,
		SessionTTL: c.Store.SessionTTL,
	}
}

// ServerOptions configures the HTTP server.
func (c Config) ServerOptions() httpserver.Options {
	return httpserver.Options{
		ClientOrigin: c.Server.ClientOrigin,
		TokenSecret:  c.Server.TokenSecret,
		TokenTTL:     c.Server.TokenTTL,
		CacheTTL:     c.Server.CacheTTL,
		RateLimit:    c.Server.RateLimit,
		RateBurst:    c.Server.RateBurst,
		MaxResults:   c.Server.MaxResults,
	}
}
