// Package config holds the process-wide read-only settings: upstream base
// URL, channel allow-list, default page size and cache TTL. Loaded once at
// startup and never mutated afterwards.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// EnvAPIURL overrides the configured base URL when set.
const EnvAPIURL = "EMOTETOP_API_URL"

type Config struct {
	APIURL          string   `json:"api_url"`
	Channels        []string `json:"channels"`
	DefaultPerPage  string   `json:"default_per_page"`
	CacheTTLMinutes int      `json:"cache_ttl_minutes"`
}

func DefaultConfig() Config {
	return Config{
		APIURL:          "https://emotes.awoo.nl",
		Channels:        []string{"fuslie", "fukura____", "v_cn_t"},
		DefaultPerPage:  "100",
		CacheTTLMinutes: 60,
	}
}

// CacheTTL returns the response-cache staleness window.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// ChannelAllowed reports whether the channel is on the allow-list.
func (c Config) ChannelAllowed(channel string) bool {
	for _, ch := range c.Channels {
		if ch == channel {
			return true
		}
	}
	return false
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "emotetop")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "emotetop")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return applyEnv(cfg), fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultConfig().APIURL
	}
	if len(cfg.Channels) == 0 {
		cfg.Channels = DefaultConfig().Channels
	}
	if cfg.DefaultPerPage == "" {
		cfg.DefaultPerPage = DefaultConfig().DefaultPerPage
	}
	if cfg.CacheTTLMinutes <= 0 {
		cfg.CacheTTLMinutes = DefaultConfig().CacheTTLMinutes
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}
	return cfg
}
