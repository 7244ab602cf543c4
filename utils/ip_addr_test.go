package utils

import (
	"net"
	"net/http"
	"testing"
)

func TestGetIpAddress(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		addr   net.Addr
		want   string
	}{
		{
			name:   "cloudflare header wins",
			header: http.Header{"Cf-Connecting-Ip": []string{"203.0.113.7"}},
			addr:   &net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 4000},
			want:   "203.0.113.7",
		},
		{
			name: "plain tcp address",
			addr: &net.TCPAddr{IP: net.ParseIP("192.0.2.10"), Port: 54321},
			want: "192.0.2.10",
		},
		{
			name: "ipv6 mapped ipv4",
			addr: &net.TCPAddr{IP: net.ParseIP("::ffff:198.51.100.4"), Port: 80},
			want: "198.51.100.4",
		},
		{
			name: "nil everything",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetIpAddress(tt.header, tt.addr); got != tt.want {
				t.Errorf("GetIpAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
