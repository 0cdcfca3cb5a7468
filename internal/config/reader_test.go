package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Defaults(t *testing.T) {
	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", cfg.Auth.StaticUserID)
	assert.Empty(t, cfg.Auth.JWTSigningKey)
	assert.False(t, cfg.Store.Configured())
}

func TestEnvReader_StoreFromEnv(t *testing.T) {
	t.Setenv("STORE_URL", "postgres://svc@db.example.com:5432/tasks")
	t.Setenv("STORE_KEY", "service-key")
	t.Setenv("STORE_CONNECT_TIMEOUT", "3s")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.True(t, cfg.Store.Configured())
	assert.Equal(t, "postgres://svc@db.example.com:5432/tasks", cfg.Store.URL)
	assert.Equal(t, "service-key", cfg.Store.Key)
	assert.Equal(t, 3*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, 10*time.Second, cfg.Store.PingTimeout)
}

func TestStoreConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  StoreConfig
		want bool
	}{
		{name: "both set", cfg: StoreConfig{URL: "postgres://db", Key: "k"}, want: true},
		{name: "missing key", cfg: StoreConfig{URL: "postgres://db"}, want: false},
		{name: "missing url", cfg: StoreConfig{Key: "k"}, want: false},
		{name: "empty", cfg: StoreConfig{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Configured())
		})
	}
}
