package utils

import (
	"net"
	"net/http"
	"strings"
)

// GetIpAddress gets the client IP address from a set of headers and a net
// address. The CF-Connecting-IP header wins when Cloudflare fronts the app.
func GetIpAddress(header http.Header, addr net.Addr) string {

	if header != nil {
		if ip := header.Get("CF-Connecting-IP"); ip != "" {
			return ip
		}
	}
	if addr == nil {
		return ""
	}

	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		host = addr.String()
	}

	// Only has an effect for IPv6-mapped addresses
	host = strings.Trim(host, "[]")
	return strings.TrimPrefix(host, "::ffff:")

}
