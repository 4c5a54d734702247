package ratelimit

import (
	"net/http"
	"strings"
)

// MatchEndpoint finds the limit configuration covering a path and method.
// The health check is always unlimited; a Path ending in "/" acts as a
// prefix so "/v1/offices/" covers "/v1/offices/Nairobi". Returns nil when
// only the default limit applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return &EndpointConfig{}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
