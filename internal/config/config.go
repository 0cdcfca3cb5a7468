package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env   string `env:"ENV" env-default:"dev"`
	HTTP  HTTPConfig
	Store StoreConfig
	Auth  AuthConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// StoreConfig holds the remote store endpoint and access key. Both are
// optional on purpose: without them the service still starts and serves
// the health route, reporting the store as disconnected.
type StoreConfig struct {
	URL            string        `env:"STORE_URL"`
	Key            string        `env:"STORE_KEY"`
	ConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"STORE_PING_TIMEOUT" env-default:"10s"`
}

func (c StoreConfig) Configured() bool {
	return c.URL != "" && c.Key != ""
}

type AuthConfig struct {
	// StaticUserID is the placeholder identity used until real token
	// verification is plugged in.
	StaticUserID  string `env:"STATIC_USER_ID" env-default:"00000000-0000-0000-0000-000000000001"`
	JWTSigningKey string `env:"JWT_SIGNING_KEY"`
}
