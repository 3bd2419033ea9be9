package netcalc

import (
	"testing"
)

func TestClassifyIPv6(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IPv6Kind
	}{
		{"回环", "::1", IPv6Loopback},
		{"未指定", "::", IPv6Unspecified},
		{"链路本地", "fe80::1", IPv6LinkLocal},
		{"链路本地大写", "FE80::AB:1", IPv6LinkLocal},
		{"唯一本地fc", "fc00::1", IPv6UniqueLocal},
		{"唯一本地fd", "fd12:3456:789a::1", IPv6UniqueLocal},
		{"组播", "ff02::1", IPv6Multicast},
		{"文档网段", "2001:db8::1", IPv6Documentation},
		{"全球单播", "2a00:1450:4001:80e::200e", IPv6Global},
		{"全球单播2", "2400:cb00::1", IPv6Global},
		{"v4映射", "::ffff:192.0.2.1", IPv6Mapped},
		{"保留", "::2", IPv6Reserved},
		{"保留高段", "4000::1", IPv6Reserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyIPv6(tt.input)
			if !info.Valid {
				t.Fatalf("Expected %q to be valid", tt.input)
			}
			if info.Kind != tt.want {
				t.Errorf("Expected kind %s for %q, got %s", tt.want, tt.input, info.Kind)
			}
		})
	}
}

func TestClassifyIPv6Invalid(t *testing.T) {
	for _, input := range []string{"", "not-an-ip", "192.0.2.1", "fe80:::1", "12345::1"} {
		info := ClassifyIPv6(input)
		if info.Valid {
			t.Errorf("Expected %q to be invalid", input)
		}
	}
}

func TestClassifyIPv6Structure(t *testing.T) {
	info := ClassifyIPv6("fe80::1")

	// 1. 书写结构事实
	if info.Groups != 2 {
		t.Errorf("Expected 2 written groups, got %d", info.Groups)
	}
	if !info.Shortened {
		t.Errorf("Expected :: compression to be detected")
	}

	// 2. 两种书写形式
	if info.Expanded != "fe80:0000:0000:0000:0000:0000:0000:0001" {
		t.Errorf("Expected full expansion, got %s", info.Expanded)
	}
	if info.Compressed != "fe80::1" {
		t.Errorf("Expected canonical compressed form, got %s", info.Compressed)
	}

	// 3. 未压缩的完整书写
	full := ClassifyIPv6("2001:0db8:0000:0000:0000:8a2e:0370:7334")
	if full.Shortened {
		t.Errorf("Expected no compression in full form")
	}
	if full.Groups != 8 {
		t.Errorf("Expected 8 written groups, got %d", full.Groups)
	}
}

func TestExpandIPv6(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fe80::1", "fe80:0000:0000:0000:0000:0000:0000:0001"},
		{"2001:db8::8a2e:370:7334", "2001:0db8:0000:0000:0000:8a2e:0370:7334"},
		{"::", "0000:0000:0000:0000:0000:0000:0000:0000"},
	}

	for _, tt := range tests {
		got, err := ExpandIPv6(tt.input)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}

	if _, err := ExpandIPv6("192.0.2.1"); err == nil {
		t.Errorf("Expected error for ipv4 input, got nil")
	}
	if _, err := ExpandIPv6("bogus"); err == nil {
		t.Errorf("Expected error for invalid input, got nil")
	}
}

func TestCompressIPv6(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2001:0db8:0000:0000:0000:0000:0000:0001", "2001:db8::1"},
		{"fe80:0:0:0:0:0:0:1", "fe80::1"},
		{"2001:db8::1", "2001:db8::1"},
	}

	for _, tt := range tests {
		got, err := CompressIPv6(tt.input)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}

	if _, err := CompressIPv6("nope"); err == nil {
		t.Errorf("Expected error for invalid input, got nil")
	}
}
