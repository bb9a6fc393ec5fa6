package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"mathventure/internal/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		LogLevel: "info",
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MATHVENTURE_ADDR cannot be empty")
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "Error"} {
		t.Run(level, func(t *testing.T) {
			cfg := config.Config{Addr: ":8080", LogLevel: level}
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := config.Config{Addr: ":8080", LogLevel: "verbose"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("MATHVENTURE_ADDR", ":9090")
	t.Setenv("MATHVENTURE_DB", "custom.db")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("MATHVENTURE_ADDR")
	os.Unsetenv("LOG_LEVEL")

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}
