package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, time.Second, c.SplashDelay)
	assert.NotEmpty(t, c.DataDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
