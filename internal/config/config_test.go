package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{envAddr, envLogLevel, envStaticDir, envSeed} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "web/static", cfg.StaticDir)
	assert.False(t, cfg.HasSeed)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(envAddr, "127.0.0.1:9000")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envSeed, "1234")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(1234), cfg.Seed)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(envLogLevel, "loud")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv(envSeed, "-5")
	_, err = Load()
	assert.Error(t, err)
}
