package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so ambient values cannot leak in.
// t.Setenv registers the restore, then the variable is genuinely unset so that
// envDefault values apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"RUN_MIGRATIONS", "JWT_SECRET", "JWT_EXPIRATION", "BCRYPT_COST",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "TASK_CACHE_TTL",
		"CORS_ORIGIN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "todo", cfg.DBName)
	assert.False(t, cfg.RunMigrations)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.TaskCacheTTL)
	assert.Empty(t, cfg.RedisHost)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "3000")
	t.Setenv("JWT_EXPIRATION", "30m")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("TASK_CACHE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiration)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 90*time.Second, cfg.TaskCacheTTL)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "todo",
	}

	want := "host=db.internal user=app password=secret dbname=todo port=5433 sslmode=disable TimeZone=UTC"
	assert.Equal(t, want, cfg.DSN())
}

func TestConfig_RedisAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
		want string
	}{
		{name: "configured", host: "cache.internal", port: "6380", want: "cache.internal:6380"},
		{name: "unset host disables redis", host: "", port: "6379", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{RedisHost: tt.host, RedisPort: tt.port}
			assert.Equal(t, tt.want, cfg.RedisAddr())
		})
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{
			name:    "single origin",
			origins: "https://example.com",
			want:    []string{"https://example.com"},
		},
		{
			name:    "multiple origins with spaces",
			origins: "https://example.com, https://app.example.com",
			want:    []string{"https://example.com", "https://app.example.com"},
		},
		{
			name:    "empty segments dropped",
			origins: "https://example.com,,https://app.example.com,",
			want:    []string{"https://example.com", "https://app.example.com"},
		},
		{
			name:    "unset yields nil",
			origins: "",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CORSAllowedOrigins: tt.origins}
			assert.Equal(t, tt.want, cfg.GetCORSAllowedOrigins())
		})
	}
}
