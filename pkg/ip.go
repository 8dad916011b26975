package pkg

import (
	"errors"
	"net"
	"net/http"
)

// ReadUserIP tries to get the real user/client IP address,
// checking the reverse proxy headers first
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}
	if ipAddr == "" {
		return "", errors.New("ip address not found")
	}

	// remove the port, if present
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host, nil
	}
	return ipAddr, nil
}
