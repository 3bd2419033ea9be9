package netcalc

import (
	"testing"
)

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{"全零地址", "0.0.0.0", 0, false},
		{"全一地址", "255.255.255.255", 0xFFFFFFFF, false},
		{"私有地址", "192.168.1.1", 0xC0A80101, false},
		{"首尾空白", "  10.0.0.1  ", 0x0A000001, false},
		{"空字符串", "", 0, true},
		{"段数不足", "1.2.3", 0, true},
		{"段数过多", "1.2.3.4.5", 0, true},
		{"八位组超界", "256.1.1.1", 0, true},
		{"非数字", "1.2.3.a", 0, true},
		{"前导零", "01.2.3.4", 0, true},
		{"负数", "-1.2.3.4", 0, true},
		{"空段", "1..2.3", 0, true},
		{"带端口", "1.2.3.4:80", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIPv4(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got value %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error for %q, got %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected 0x%08X, got 0x%08X", tt.want, got)
			}
		})
	}
}

func TestFormatIPv4(t *testing.T) {
	tests := []struct {
		value uint32
		want  string
	}{
		{0, "0.0.0.0"},
		{0xFFFFFFFF, "255.255.255.255"},
		{0xC0A80101, "192.168.1.1"},
		{0x7F000001, "127.0.0.1"},
	}

	for _, tt := range tests {
		if got := FormatIPv4(tt.value); got != tt.want {
			t.Errorf("Expected %q for 0x%08X, got %q", tt.want, tt.value, got)
		}
	}
}
