package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	corsAllowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-LIFTSTATS-TOKEN, Mcp-Protocol-Version, Mcp-Session-Id"
	corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
)

// trusted non-browser clients, they send no Origin
var trustedUserAgentPrefixes = []string{"curl/", "test-agent"}

// Cors lets the configured web origins and trusted tools through; everything else gets a 403.
// MCP clients rarely send an Origin, so /mcp is open and protected by the session token only.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[strings.TrimRight(o, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowOrigin, ok := corsDecision(origins, origin, r)
			if !ok {
				log.Warnf("cors: rejected origin [%s] for %s %s", origin, r.Method, r.URL.Path)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowOrigin)
			h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			h.Add("Vary", "Origin")

			next.ServeHTTP(w, r)
		})
	}
}

func corsDecision(origins map[string]bool, origin string, r *http.Request) (string, bool) {
	if origin != "" && origins[origin] {
		return origin, true
	}
	if strings.HasPrefix(r.URL.Path, "/mcp") {
		if origin == "" {
			return "*", true
		}
		return origin, true
	}
	userAgent := r.Header.Get("User-Agent")
	for _, prefix := range trustedUserAgentPrefixes {
		if strings.HasPrefix(userAgent, prefix) {
			return origin, true
		}
	}
	return "", false
}
