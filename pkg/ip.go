package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// LocalClientIP is returned for requests coming from the dev machine or the local docker network.
const LocalClientIP = "localhost"

// ClientIP resolves the caller address, preferring the headers set by the reverse proxy.
func ClientIP(r *http.Request) (string, error) {
	addr := strings.TrimSpace(r.Header.Get("X-Real-Ip"))
	if addr == "" {
		// client, proxy1, proxy2
		forwarded := r.Header.Get("X-Forwarded-For")
		addr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if addr == "" {
		addr = r.RemoteAddr
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return "", fmt.Errorf("client addr %q is not an ip", addr)
	}
	if IsLocalIP(ip) {
		return LocalClientIP, nil
	}

	return ip.String(), nil
}

// IsLocalIP reports loopback addresses and docker bridge gateways (172.x.0.1).
func IsLocalIP(ip net.IP) bool {
	if ip.IsLoopback() {
		return true
	}
	ip4 := ip.To4()
	return ip4 != nil && ip4[0] == 172 && ip4[2] == 0 && ip4[3] == 1
}
