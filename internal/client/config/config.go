package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mogligram/mogligram/internal/client/api"
)

// Config holds runtime settings for the Mogligram client.
//
// Fields:
//   - APIBaseURL: base URL of the remote content service.
//   - RequestTimeout: fixed per-request timeout after which a fetch is
//     reported as failed.
//   - DataDir: directory for the embedded store and the log file.
//   - SplashDelay: minimum time the splash screen stays visible, so startup
//     does not flash on fast disks.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DataDir        string
	SplashDelay    time.Duration
}

// LoadDefaults populates c with built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = api.DefaultBaseURL
	c.RequestTimeout = api.DefaultTimeout
	c.DataDir = defaultDataDir()
	c.SplashDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".mogligram"
	}
	return filepath.Join(base, "mogligram")
}
