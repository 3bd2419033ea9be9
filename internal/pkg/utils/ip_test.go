package utils

import "testing"

func TestIsValidIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"127.0.0.1", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"192.168.1.100", true},
		{"198.51.100.1", true},
		{"", false},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"abc", false},
		{"127.0.0.1:80", false},
		// IPv6 写法一律拒绝，包括 IPv4-mapped
		{"::1", false},
		{"fe80::1", false},
		{"::ffff:192.0.2.1", false},
	}

	for _, tt := range tests {
		if got := IsValidIPv4(tt.input); got != tt.want {
			t.Errorf("IsValidIPv4(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidPort(t *testing.T) {
	tests := []struct {
		port int
		want bool
	}{
		{1, true},
		{22, true},
		{65535, true},
		{0, false},
		{-1, false},
		{65536, false},
		{100000, false},
	}

	for _, tt := range tests {
		if got := IsValidPort(tt.port); got != tt.want {
			t.Errorf("IsValidPort(%d) = %v, want %v", tt.port, got, tt.want)
		}
	}
}

func TestNormalizeIP(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"192.168.1.1", "192.168.1.1"},
		{"192.168.1.1:8080", "192.168.1.1"},
		{"::ffff:192.0.2.1", "192.0.2.1"},
		{"[::1]:443", "::1"},
		{"  10.0.0.1 ", "10.0.0.1"},
		{"", ""},
		{"not-an-ip", "not-an-ip"},
	}

	for _, tt := range tests {
		if got := NormalizeIP(tt.input); got != tt.want {
			t.Errorf("NormalizeIP(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
