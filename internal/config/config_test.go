package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "EXPIRES_IN", "BCRYPT_COST", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_KEY", "s3cret")
	t.Setenv("EXPIRES_IN", "90m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenExpiry)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "go duration", value: "2h", want: 2 * time.Hour},
		{name: "bare seconds", value: "30", want: 30 * time.Second},
		{name: "garbage falls back", value: "soon", want: time.Minute},
		{name: "negative falls back", value: "-5s", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvDuration("TEST_DURATION", time.Minute))
		})
	}
}
