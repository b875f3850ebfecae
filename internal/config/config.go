package config

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Achievements AchievementsConfig `yaml:"achievements"`
	Tracing      TracingConfig      `yaml:"tracing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// LoginRateLimit caps POST /auth/vk per client IP and minute; 0 disables it.
	LoginRateLimit int `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"so-rest"`
	// StatementTimeout is applied per session; 0 leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds session token and VK launch-parameter settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"so-rest"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	VKAppSecret    string        `yaml:"vk_app_secret"    env:"AUTH_VK_APP_SECRET"    env-required:"true"`
	AdminVKIDsRaw  string        `yaml:"admin_vk_ids"     env:"AUTH_ADMIN_VK_IDS"`

	// AdminVKIDs is parsed from AdminVKIDsRaw during validation.
	AdminVKIDs []int64 `yaml:"-" env:"-"`
}

// IsAdmin reports whether the VK user id is configured as an administrator.
func (c AuthConfig) IsAdmin(vkID int64) bool {
	return slices.Contains(c.AdminVKIDs, vkID)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AchievementsConfig tunes achievement re-evaluation.
type AchievementsConfig struct {
	BatchConcurrency  int           `yaml:"batch_concurrency"  env:"ACHIEVEMENTS_BATCH_CONCURRENCY"  env-default:"4"`
	PerBoecTimeout    time.Duration `yaml:"per_boec_timeout"   env:"ACHIEVEMENTS_PER_BOEC_TIMEOUT"   env-default:"10s"`
	RetryAttempts     int           `yaml:"retry_attempts"     env:"ACHIEVEMENTS_RETRY_ATTEMPTS"     env-default:"3"`
	BackgroundTimeout time.Duration `yaml:"background_timeout" env:"ACHIEVEMENTS_BACKGROUND_TIMEOUT" env-default:"5m"`
}

// TracingConfig holds OpenTelemetry settings. Tracing is off unless enabled
// and an endpoint is set.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"      env:"TRACING_ENABLED"      env-default:"false"`
	Endpoint    string  `yaml:"endpoint"     env:"TRACING_ENDPOINT"`
	ServiceName string  `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"so-rest"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO" env-default:"1.0"`
}

// Active reports whether a tracer provider should be installed.
func (c TracingConfig) Active() bool {
	return c.Enabled && c.Endpoint != ""
}

// ParseVKIDs parses a comma-separated list of VK user ids. An empty string
// returns a nil slice.
func ParseVKIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
