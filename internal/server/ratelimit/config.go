package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig sets the limit for one route. A Path ending in "/" is
// treated as a prefix. Burst defaults to Limit when zero.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// DefaultEndpointConfigs returns the per-route limits. Resolve and chat
// may call the model and get tight budgets; catalog reads fall through to
// the default limit, and /health is special-cased as unlimited in
// MatchEndpoint.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/v1/resolve", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/resolve/stream", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/v1/chat", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// LoadConfig builds the limiter configuration. perMinute overrides the
// default per-client limit when positive, so the config file's
// rate_limit_per_minute wins over the RATE_LIMIT_DEFAULT_LIMIT variable.
// RATE_LIMIT_ENABLED=false turns limiting off entirely.
func LoadConfig(perMinute int) *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{}
	}

	defaultLimit := envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000)
	if perMinute > 0 {
		defaultLimit = perMinute
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   time.Minute,
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       ipSet(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       ipSet(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// ipSet parses a comma-separated address list into a lookup set.
func ipSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
