// Package config loads application configuration from defaults, an optional YAML file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for generic environment overrides, e.g. BISTRO_LOG_LEVEL.
const EnvPrefix = "BISTRO_"

// legacyEnv maps the variable names used by existing deployments to config keys.
var legacyEnv = map[string]string{
	"DB_USER":             "mongo.user",
	"DB_PASS":             "mongo.password",
	"DB_CLUSTER":          "mongo.cluster",
	"ACCESS_TOKEN_SECRET": "jwt.secret_key",
	"PAYMENT_SECRET_KEY":  "payment.secret_key",
	"PORT":                "server.port",
}

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Mongo   MongoConfig   `koanf:"mongo"`
	JWT     JWTConfig     `koanf:"jwt"`
	Payment PaymentConfig `koanf:"payment"`
	Log     LogConfig     `koanf:"log"`
	CORS    CORSConfig    `koanf:"cors"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	MetricsPort       string        `koanf:"metrics_port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// MongoConfig contains document store settings.
// Either URI or User, Password and Cluster must be set.
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	User           string        `koanf:"user"`
	Password       string        `koanf:"password"`
	Cluster        string        `koanf:"cluster"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	MigrationsPath string        `koanf:"migrations_path"`
}

// ConnectionURI returns URI when set, otherwise an Atlas SRV address built from credentials.
func (c MongoConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Cluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// JWTConfig contains token signing settings.
type JWTConfig struct {
	SecretKey     string        `koanf:"secret_key"`
	TokenDuration time.Duration `koanf:"token_duration"`
}

// PaymentConfig contains payment processor settings.
type PaymentConfig struct {
	SecretKey string `koanf:"secret_key"`
	Currency  string `koanf:"currency"`
	// APIURL overrides the processor endpoint, e.g. for a local mock.
	APIURL string `koanf:"api_url"`
	// RateLimit is payment intents per second across the process. Zero disables the limit.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CORSConfig contains cross-origin settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// Default returns configuration with every optional field populated.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              "5000",
			MetricsPort:       "9090",
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Mongo: MongoConfig{
			Database:       "bistroDb",
			ConnectTimeout: 10 * time.Second,
		},
		JWT: JWTConfig{
			TokenDuration: 2 * time.Hour,
		},
		Payment: PaymentConfig{
			Currency:  "usd",
			RateLimit: 20,
			RateBurst: 40,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads configuration. An empty path skips the file layer.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey translates an environment variable into a config key.
// Unrelated variables map to an empty key and are skipped.
func envKey(name, value string) (string, interface{}) {
	if key, ok := legacyEnv[name]; ok {
		return key, value
	}

	if !strings.HasPrefix(name, EnvPrefix) {
		return "", nil
	}

	// BISTRO_MONGO_CONNECT_TIMEOUT -> mongo.connect_timeout
	rest := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, key, ok := strings.Cut(rest, "_")
	if !ok {
		return "", nil
	}

	if section == "cors" && key == "allowed_origins" {
		return section + "." + key, strings.Split(value, ",")
	}

	return section + "." + key, value
}

// Validate checks that settings required at process start are present.
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.SecretKey == "" {
		errs = append(errs, errors.New("jwt.secret_key (ACCESS_TOKEN_SECRET) is required"))
	}
	if c.JWT.TokenDuration <= 0 {
		errs = append(errs, errors.New("jwt.token_duration must be positive"))
	}
	if c.Payment.SecretKey == "" {
		errs = append(errs, errors.New("payment.secret_key (PAYMENT_SECRET_KEY) is required"))
	}
	if c.Mongo.URI == "" && (c.Mongo.User == "" || c.Mongo.Password == "" || c.Mongo.Cluster == "") {
		errs = append(errs, errors.New("mongo.uri or mongo.user, mongo.password and mongo.cluster are required"))
	}
	if c.Mongo.Database == "" {
		errs = append(errs, errors.New("mongo.database is required"))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
