package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Config struct {
	// ZoneFile is the metadata document holding the zone and arena.
	ZoneFile string

	Host    string
	Port    int
	Preview bool

	APIKey string

	Debug string

	MaxDepth  int
	Heartbeat time.Duration
}

var (
	cfg  *Config
	once sync.Once
)

const (
	DefaultZoneFile    = "astoria.json"
	DefaultHeartbeatMs = 50
)

func Load() *Config {
	once.Do(func() {
		loadDotEnv()

		cfg = &Config{
			ZoneFile:  getEnv("ZONE_FILE", DefaultZoneFile),
			Host:      getEnv("HOST", "127.0.0.1"),
			Port:      getEnvInt("PORT", 8046),
			Preview:   getEnvBool("PREVIEW", true),
			APIKey:    getEnv("API_KEY", ""),
			Debug:     getEnv("DEBUG", "off"),
			MaxDepth:  getEnvInt("MAX_DEPTH", 64),
			Heartbeat: time.Duration(getEnvInt("HEARTBEAT_MS", DefaultHeartbeatMs)) * time.Millisecond,
		}

		if cfg.Heartbeat <= 0 {
			cfg.Heartbeat = DefaultHeartbeatMs * time.Millisecond
		}

		applyArgs(cfg, os.Args[1:])
	})

	return cfg
}

func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

// applyArgs handles the few command-line overrides; anything unknown is
// ignored so env stays the primary source.
func applyArgs(c *Config, args []string) {
	for i, arg := range args {
		if i+1 >= len(args) {
			break
		}
		switch arg {
		case "-debug":
			c.Debug = args[i+1]
		case "-zone-file":
			c.ZoneFile = args[i+1]
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	}
	return defaultValue
}
